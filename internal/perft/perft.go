// Package perft counts the leaves of the legal move tree to a fixed depth.
// Comparing the counts with published reference values is the standard
// way to validate move generation.
package perft

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Stats holds leaf counts for a perft run. Every field except Nodes
// counts leaf moves of that kind.
type Stats struct {
	Nodes      uint64 `json:"nodes"`
	Captures   uint64 `json:"captures"`
	EnPassant  uint64 `json:"en_passant"`
	Castles    uint64 `json:"castles"`
	Promotions uint64 `json:"promotions"`
	Checks     uint64 `json:"checks"`
	Checkmates uint64 `json:"checkmates"`
}

func (s *Stats) add(o Stats) {
	s.Nodes += o.Nodes
	s.Captures += o.Captures
	s.EnPassant += o.EnPassant
	s.Castles += o.Castles
	s.Promotions += o.Promotions
	s.Checks += o.Checks
	s.Checkmates += o.Checkmates
}

// record counts one leaf move.
func (s *Stats) record(t engine.Transition) {
	m := t.Move
	s.Nodes++
	if m.IsCapture() {
		s.Captures++
	}
	if m.IsEnPassant {
		s.EnPassant++
	}
	if m.IsCastle() {
		s.Castles++
	}
	if m.IsPromotion() {
		s.Promotions++
	}
	if m.IsCheck {
		s.Checks++
		if !engine.HasLegalMoves(t.Position.SideToMove(), t.Position) {
			s.Checkmates++
		}
	}
}

// MoveCount is the subtotal below one root move.
type MoveCount struct {
	Move  chess.Move
	Stats Stats
}

// Config configures a Counter.
type Config struct {
	// Workers is the number of goroutines sharing the root moves.
	// Values below 1 count sequentially on one worker.
	Workers int

	// Logger receives progress events; nil disables logging.
	Logger *zerolog.Logger
}

// Counter runs perft counts.
type Counter struct {
	workers int
	log     zerolog.Logger
}

// New creates a Counter from cfg.
func New(cfg Config) *Counter {
	c := &Counter{workers: cfg.Workers, log: zerolog.Nop()}
	if c.workers < 1 {
		c.workers = 1
	}
	if cfg.Logger != nil {
		c.log = *cfg.Logger
	}
	return c
}

// Count returns the leaf statistics of pos to depth plies using a
// sequential Counter without logging.
func Count(ctx context.Context, pos engine.Position, depth int) (Stats, error) {
	return New(Config{}).Count(ctx, pos, depth)
}

// Count returns the leaf statistics of pos to depth plies. Depth 0
// counts the position itself as one node. If ctx is cancelled the count
// stops and ctx.Err() is returned.
func (c *Counter) Count(ctx context.Context, pos engine.Position, depth int) (Stats, error) {
	_, total, err := c.Divide(ctx, pos, depth)
	return total, err
}

// Divide is like Count but also returns the subtotal of each root move,
// in generation order.
func (c *Counter) Divide(ctx context.Context, pos engine.Position, depth int) ([]MoveCount, Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, Stats{}, err
	}
	if depth <= 0 {
		return nil, Stats{Nodes: 1}, nil
	}

	start := time.Now()
	roots := engine.Successors(pos)
	pool := worker.NewPoolWithOptions(
		func(item worker.WorkItem[engine.Transition]) worker.Result[Stats] {
			s, err := subtree(ctx, item.Payload, depth)
			return worker.Result[Stats]{Value: s, Index: item.Index, Err: err}
		},
		worker.WithWorkers(c.workers),
		worker.WithBufferSize(len(roots)+1),
	)
	c.log.Info().
		Int("depth", depth).
		Int("workers", pool.NumWorkers()).
		Int("roots", len(roots)).
		Msg("perft started")
	pool.Start()

	go func() {
		for i, t := range roots {
			pool.Submit(worker.WorkItem[engine.Transition]{Payload: t, Index: i})
		}
		pool.Close()
	}()

	counts := make([]MoveCount, len(roots))
	var (
		total    Stats
		firstErr error
	)
	for r := range pool.Results() {
		if r.Err != nil {
			if firstErr == nil {
				firstErr = r.Err
				pool.Stop()
			}
			continue
		}
		counts[r.Index] = MoveCount{Move: roots[r.Index].Move, Stats: r.Value}
		total.add(r.Value)
		c.log.Debug().
			Str("move", roots[r.Index].Move.String()).
			Uint64("nodes", r.Value.Nodes).
			Msg("root move counted")
	}

	if firstErr == nil {
		firstErr = ctx.Err()
	}
	if firstErr != nil {
		c.log.Warn().Err(firstErr).Int("depth", depth).Msg("perft aborted")
		return nil, Stats{}, firstErr
	}

	elapsed := time.Since(start)
	c.log.Info().
		Int("depth", depth).
		Uint64("nodes", total.Nodes).
		Dur("elapsed", elapsed).
		Float64("nps", float64(total.Nodes)/elapsed.Seconds()).
		Msg("perft finished")
	return counts, total, nil
}

// subtree counts the leaves below root move t, which sits at ply 1 of a
// search of the given depth.
func subtree(ctx context.Context, t engine.Transition, depth int) (Stats, error) {
	if depth == 1 {
		var s Stats
		s.record(t)
		return s, nil
	}
	return walk(ctx, t.Position, depth-1)
}

func walk(ctx context.Context, pos engine.Position, depth int) (Stats, error) {
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}
	var s Stats
	for _, t := range engine.Successors(pos) {
		if depth == 1 {
			s.record(t)
			continue
		}
		sub, err := walk(ctx, t.Position, depth-1)
		if err != nil {
			return Stats{}, err
		}
		s.add(sub)
	}
	return s, nil
}
