package engine_test

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestOutcome(t *testing.T) {
	knightDance := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	var twelve []string
	for i := 0; i < 3; i++ {
		twelve = append(twelve, knightDance...)
	}

	tests := []struct {
		name            string
		fen             string
		moves           []string
		wantStatus      chess.Status
		wantTermination chess.Termination
	}{
		{"fool's mate", testutil.InitialFEN, []string{"f2f3", "e7e5", "g2g4", "d8h4"}, chess.BlackWin, chess.Checkmate},
		{"scholar's mate", testutil.InitialFEN, []string{"e2e4", "e7e5", "d1h5", "b8c6", "f1c4", "g8f6", "h5f7"}, chess.WhiteWin, chess.Checkmate},
		{"back rank mate", "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", []string{"a1a8"}, chess.WhiteWin, chess.Checkmate},
		{"stalemate", "7k/8/6Q1/8/8/8/8/K7 w - - 0 1", []string{"g6f7"}, chess.Draw, chess.Stalemate},
		{"fifty-move rule", "4k3/8/8/8/8/8/8/R3K3 w - - 49 80", []string{"a1a2"}, chess.Draw, chess.FiftyMoveRule},
		{"capture resets clock", "4k3/8/8/8/8/8/r7/R3K3 w - - 49 80", []string{"a1a2"}, chess.Started, chess.NoTermination},
		{"pawn move resets clock", "4k3/8/8/8/8/8/P7/R3K3 w - - 49 80", []string{"a2a3"}, chess.Started, chess.NoTermination},
		{"one cycle short", testutil.InitialFEN, twelve[:11], chess.Started, chess.NoTermination},
		{"three cycles", testutil.InitialFEN, twelve, chess.Draw, chess.Repetition},
		{"check is not mate", testutil.InitialFEN, []string{"e2e4", "f7f6", "d1h5"}, chess.Started, chess.NoTermination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustApply(t, testutil.MustDecode(t, tt.fen), tt.moves...)
			testutil.AssertEqual(t, pos.Status(), tt.wantStatus)
			testutil.AssertEqual(t, pos.Termination(), tt.wantTermination)
		})
	}
}

func TestOutcome_FiftyMoveBeatsCheckmate(t *testing.T) {
	pos := testutil.MustApply(t, testutil.MustDecode(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 49 80"), "a1a8")
	testutil.AssertEqual(t, pos.Status(), chess.Draw)
	testutil.AssertEqual(t, pos.Termination(), chess.FiftyMoveRule)
}

func TestAnalyzeDrawRules(t *testing.T) {
	pos := testutil.MustApply(t, engine.NewGame(), "b1c3", "b8c6", "c3b1", "c6b8", "b1c3", "b8c6", "c3b1", "c6b8")
	got := engine.AnalyzeDrawRules(pos)
	testutil.AssertEqual(t, got, engine.DrawRuleResult{})

	pos = testutil.MustApply(t, pos, "b1c3", "b8c6", "c3b1", "c6b8")
	got = engine.AnalyzeDrawRules(pos)
	testutil.AssertEqual(t, got, engine.DrawRuleResult{Repetition: true})
}

func TestIsCheckmateAndStalemate(t *testing.T) {
	tests := []struct {
		name          string
		fen           string
		wantCheckmate bool
		wantStalemate bool
		wantInCheck   bool
	}{
		{"initial", testutil.InitialFEN, false, false, false},
		{"mated", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 1 1", true, false, true},
		{"stalemated", "7k/5Q2/8/8/8/8/8/K7 b - - 1 1", false, true, false},
		{"check with escape", "4k3/8/8/8/8/8/8/4RK2 b - - 0 1", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustDecode(t, tt.fen)
			testutil.AssertEqual(t, engine.IsCheckmate(pos), tt.wantCheckmate, "IsCheckmate")
			testutil.AssertEqual(t, engine.IsStalemate(pos), tt.wantStalemate, "IsStalemate")
			testutil.AssertEqual(t, pos.InCheck(), tt.wantInCheck, "InCheck")
		})
	}
}
