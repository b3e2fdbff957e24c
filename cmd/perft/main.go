// perft replays a game from a FEN position and counts the legal move tree
// below the position reached.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/notation"
	"github.com/lgbarn/chessrules-go/internal/perft"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("perft version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger := cfg.Log.Logger()
	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error().Err(err).Msg("perft failed")
		os.Exit(1)
	}
}

// run replays the configured moves and prints the perft results.
func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	pos, err := setupPosition(cfg.Perft)
	if err != nil {
		return err
	}
	logger.Debug().
		Str("fen", notation.Encode(pos)).
		Str("status", pos.Status().String()).
		Int("ply", pos.Ply()).
		Msg("position ready")

	out := cfg.Output.Writer
	if cfg.Output.ShowFEN {
		writePosition(out, pos)
	}

	if cfg.Perft.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Perft.Timeout)
		defer cancel()
	}

	counter := perft.New(perft.Config{Workers: cfg.Perft.Workers, Logger: &logger})
	if cfg.Perft.Divide {
		counts, total, err := counter.Divide(ctx, pos, cfg.Perft.Depth)
		if err != nil {
			return err
		}
		writeDivide(out, counts)
		writeStats(out, cfg.Perft.Depth, total)
		return nil
	}

	total, err := counter.Count(ctx, pos, cfg.Perft.Depth)
	if err != nil {
		return err
	}
	writeStats(out, cfg.Perft.Depth, total)
	return nil
}

// setupPosition decodes the starting FEN and plays the configured moves.
func setupPosition(cfg *config.PerftConfig) (engine.Position, error) {
	pos, err := notation.Decode(cfg.FEN)
	if err != nil {
		return engine.Position{}, err
	}
	cmds, err := chess.ParseMoveCommands(cfg.Moves)
	if err != nil {
		return engine.Position{}, err
	}
	return engine.ApplyMoves(pos, cmds...)
}

func writePosition(w io.Writer, pos engine.Position) {
	fmt.Fprintf(w, "fen: %s\n", notation.Encode(pos))
	fmt.Fprintf(w, "status: %s\n", pos.Status())
	if t := pos.Termination(); t != chess.NoTermination {
		fmt.Fprintf(w, "termination: %s\n", t)
	}
}

func writeDivide(w io.Writer, counts []perft.MoveCount) {
	for _, mc := range counts {
		fmt.Fprintf(w, "%s: %d\n", mc.Move, mc.Stats.Nodes)
	}
	fmt.Fprintln(w)
}

func writeStats(w io.Writer, depth int, s perft.Stats) {
	fmt.Fprintf(w, "depth: %d\n", depth)
	fmt.Fprintf(w, "nodes: %d\n", s.Nodes)
	fmt.Fprintf(w, "captures: %d\n", s.Captures)
	fmt.Fprintf(w, "en passant: %d\n", s.EnPassant)
	fmt.Fprintf(w, "castles: %d\n", s.Castles)
	fmt.Fprintf(w, "promotions: %d\n", s.Promotions)
	fmt.Fprintf(w, "checks: %d\n", s.Checks)
	fmt.Fprintf(w, "checkmates: %d\n", s.Checkmates)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts the legal move tree below a chess position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExample:\n")
	fmt.Fprintf(os.Stderr, "  perft -depth 3 -divide -moves 'e2e4 e7e5'\n")
}
