package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Transition pairs a legal move with the position it leads to.
type Transition struct {
	Move     chess.Move
	Position Position
}

// Successors returns every legal move for the side to move together with
// the resulting position. Moves carry their IsCheck stamp. The resulting
// positions have not been through outcome evaluation, which keeps
// exhaustive searches cheap; use ApplyMove for game play.
func Successors(pos Position) []Transition {
	var out []Transition
	for _, m := range GenerateAllPseudoLegalMoves(pos.sideToMove, pos) {
		if next, ok := tryMove(pos, m); ok {
			last, _ := next.LastMove()
			out = append(out, Transition{Move: last, Position: next})
		}
	}
	return out
}

// LegalMoves returns the legal moves for the side to move.
func LegalMoves(pos Position) []chess.Move {
	transitions := Successors(pos)
	moves := make([]chess.Move, len(transitions))
	for i, t := range transitions {
		moves[i] = t.Move
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(colour chess.Colour, pos Position) bool {
	g := newGenerator(pos)
	for _, m := range g.movesFor(colour) {
		if !newGenerator(advance(pos, m)).kingAttacked(colour) {
			return true
		}
	}
	return false
}
