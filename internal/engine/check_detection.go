package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given colour's king can be captured by
// one of the opponent's pseudo-legal moves.
func IsInCheck(colour chess.Colour, pos Position) bool {
	return newGenerator(pos).kingAttacked(colour)
}

// kingAttacked scans the opponent's moves for a king capture. Castling
// is switched off: a castle never captures, and generating it would need
// attack detection again.
func (g generator) kingAttacked(colour chess.Colour) bool {
	opp := g.withoutCastling()
	for _, sq := range g.board.Squares(colour.Opposite()) {
		for _, m := range opp.movesFrom(sq) {
			if m.Captured.Type == chess.King {
				return true
			}
		}
	}
	return false
}

// squareSet is a set of squares, one bit per square index.
type squareSet uint64

func (s squareSet) add(sq chess.Square) squareSet {
	if !sq.IsValid() {
		return s
	}
	return s | 1<<uint(sq.Index())
}

func (s squareSet) contains(sq chess.Square) bool {
	return sq.IsValid() && s&(1<<uint(sq.Index())) != 0
}

func (s squareSet) containsAny(squares []chess.Square) bool {
	for _, sq := range squares {
		if s.contains(sq) {
			return true
		}
	}
	return false
}

// attackedBy returns the squares colour c attacks. It is built from c's
// pseudo-legal destinations, except that pawns contribute their two
// forward diagonals instead of their moves: a push attacks nothing, and
// an empty diagonal is still covered.
func (g generator) attackedBy(c chess.Colour) squareSet {
	var set squareSet
	for _, sq := range g.board.Squares(c) {
		piece, _ := g.board.PieceAt(sq)
		if piece.Type == chess.Pawn {
			fwd := c.Forward()
			set = set.add(sq.Offset(-1, fwd)).add(sq.Offset(1, fwd))
			continue
		}
		for _, m := range g.movesFrom(sq) {
			set = set.add(m.Destination)
		}
	}
	return set
}

// IsSquareAttacked reports whether colour by attacks sq in pos.
func IsSquareAttacked(sq chess.Square, by chess.Colour, pos Position) bool {
	return newGenerator(pos).withoutCastling().attackedBy(by).contains(sq)
}
