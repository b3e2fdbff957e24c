package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// Well-known test positions.
const (
	InitialFEN = notation.InitialFEN

	// Kiwipete exercises castling, en passant, promotion and pins at low depth.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	// EndgameFEN is a rook-and-pawn ending rich in en-passant discovered checks.
	EndgameFEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
)

// MustDecode decodes a FEN string, calling t.Fatal on failure.
func MustDecode(t testing.TB, fen string) engine.Position {
	t.Helper()
	pos, err := notation.Decode(fen)
	if err != nil {
		t.Fatalf("notation.Decode(%q) failed: %v", fen, err)
	}
	return pos
}

// MustApply plays long-algebraic moves from pos, calling t.Fatal if any
// move fails to parse or is rejected.
func MustApply(t testing.TB, pos engine.Position, moves ...string) engine.Position {
	t.Helper()
	for _, s := range moves {
		cmd, err := chess.ParseMoveCommand(s)
		if err != nil {
			t.Fatalf("ParseMoveCommand(%q) failed: %v", s, err)
		}
		next, err := engine.ApplyMove(cmd, pos)
		if err != nil {
			t.Fatalf("ApplyMove(%s) from %q failed: %v", s, notation.Encode(pos), err)
		}
		pos = next
	}
	return pos
}

// Cmd parses a long-algebraic move, calling t.Fatal on failure.
func Cmd(t testing.TB, s string) chess.MoveCommand {
	t.Helper()
	cmd, err := chess.ParseMoveCommand(s)
	if err != nil {
		t.Fatalf("ParseMoveCommand(%q) failed: %v", s, err)
	}
	return cmd
}
