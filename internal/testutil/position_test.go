package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

func TestMustDecode(t *testing.T) {
	pos := MustDecode(t, KiwipeteFEN)
	AssertEqual(t, pos.CastlingRights().String(), "KQkq")
	AssertEqual(t, pos.Board().Count(), 32)
}

func TestMustApply(t *testing.T) {
	pos := MustApply(t, MustDecode(t, InitialFEN), "e2e4", "a7a6", "e4e5", "d7d5", "e5d6")

	last, ok := pos.LastMove()
	AssertTrue(t, ok, "last move present")
	AssertTrue(t, last.IsEnPassant, "e5d6 is en passant")
	AssertEqual(t, pos.SideToMove(), chess.Black)
}

func TestCmd(t *testing.T) {
	cmd := Cmd(t, "a7a8n")
	AssertEqual(t, cmd.Promotion, chess.Knight)
}
