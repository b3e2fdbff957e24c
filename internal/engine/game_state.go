package engine

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos Position) bool {
	colour := pos.sideToMove
	return IsInCheck(colour, pos) && !HasLegalMoves(colour, pos)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos Position) bool {
	colour := pos.sideToMove
	return !IsInCheck(colour, pos) && !HasLegalMoves(colour, pos)
}
