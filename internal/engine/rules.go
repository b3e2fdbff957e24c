package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// FiftyMoveLimit is the half-move clock value at which the game is drawn.
const FiftyMoveLimit = 50

// Repetition is detected on a cycle of repetitionPeriod plies seen
// repetitionCount times in a row at the end of the history.
const (
	repetitionPeriod = 4
	repetitionCount  = 3
)

// DrawRuleResult contains the results of draw rule detection.
type DrawRuleResult struct {
	// FiftyMoveRule is true once the half-move clock reaches FiftyMoveLimit.
	FiftyMoveRule bool

	// Repetition is true if the last twelve plies are the same four-ply
	// cycle played three times.
	Repetition bool
}

// AnalyzeDrawRules reports which draw rules apply to pos.
func AnalyzeDrawRules(pos Position) DrawRuleResult {
	return DrawRuleResult{
		FiftyMoveRule: pos.halfMoveClock >= FiftyMoveLimit,
		Repetition:    hasPeriodicRepetition(pos.history),
	}
}

// hasPeriodicRepetition compares the history at offsets -1/-5/-9,
// -2/-6/-10, -3/-7/-11 and -4/-8/-12. It recognises a repeated four-ply
// cycle only, not general recurrence of a position.
func hasPeriodicRepetition(history []chess.Move) bool {
	n := len(history)
	if n < repetitionPeriod*repetitionCount {
		return false
	}
	for k := 1; k <= repetitionPeriod; k++ {
		first := history[n-k]
		for r := 1; r < repetitionCount; r++ {
			if !sameMove(first, history[n-k-r*repetitionPeriod]) {
				return false
			}
		}
	}
	return true
}

func sameMove(a, b chess.Move) bool {
	return a.Piece == b.Piece &&
		a.Origin == b.Origin &&
		a.Destination == b.Destination &&
		a.PromotedTo == b.PromotedTo
}

// evaluate sets the status of a freshly advanced position. Rules are
// tried in order: fifty-move draw, repetition draw, checkmate, stalemate.
func evaluate(pos Position) Position {
	pos.status, pos.termination = outcome(pos)
	return pos
}

func outcome(pos Position) (chess.Status, chess.Termination) {
	draws := AnalyzeDrawRules(pos)
	if draws.FiftyMoveRule {
		return chess.Draw, chess.FiftyMoveRule
	}
	if draws.Repetition {
		return chess.Draw, chess.Repetition
	}

	if HasLegalMoves(pos.sideToMove, pos) {
		return chess.Started, chess.NoTermination
	}
	if last, ok := pos.LastMove(); ok && last.IsCheck {
		return chess.WinFor(last.Piece.Colour), chess.Checkmate
	}
	if !IsInCheck(pos.sideToMove, pos) {
		return chess.Draw, chess.Stalemate
	}
	return chess.Started, chess.NoTermination
}
