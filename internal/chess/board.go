package chess

// Board maps squares to pieces. Unoccupied squares hold NoPiece and are
// reported as absent by PieceAt. Board is a value: every update returns
// a new Board and leaves the receiver untouched.
type Board struct {
	squares [NumSquares]Piece
}

// NewBoard creates a board holding the given placement.
// Invalid squares and NoPiece entries are ignored.
func NewBoard(placement map[Square]Piece) Board {
	var b Board
	for sq, p := range placement {
		if sq.IsValid() && !p.IsNone() {
			b.squares[sq.Index()] = p
		}
	}
	return b
}

// StandardBoard returns the standard chess starting position.
func StandardBoard() Board {
	var b Board
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 1; file <= BoardSize; file++ {
		b.squares[NewSquare(file, 1).Index()] = W(backRank[file-1])
		b.squares[NewSquare(file, 2).Index()] = W(Pawn)
		b.squares[NewSquare(file, 7).Index()] = B(Pawn)
		b.squares[NewSquare(file, 8).Index()] = B(backRank[file-1])
	}
	return b
}

// PieceAt returns the piece on sq and whether the square is occupied.
func (b Board) PieceAt(sq Square) (Piece, bool) {
	if !sq.IsValid() {
		return NoPiece, false
	}
	p := b.squares[sq.Index()]
	return p, !p.IsNone()
}

// IsOccupied reports whether any piece stands on sq.
func (b Board) IsOccupied(sq Square) bool {
	_, ok := b.PieceAt(sq)
	return ok
}

// IsOccupiedByColour reports whether a piece of colour c stands on sq.
func (b Board) IsOccupiedByColour(sq Square, c Colour) bool {
	p, ok := b.PieceAt(sq)
	return ok && p.Colour == c
}

// Pieces returns a copy of the occupied squares.
func (b Board) Pieces() map[Square]Piece {
	out := make(map[Square]Piece)
	for i, p := range b.squares {
		if !p.IsNone() {
			out[squareAt(i)] = p
		}
	}
	return out
}

// Squares returns the squares holding pieces of colour c, a1 to h8 order.
func (b Board) Squares(c Colour) []Square {
	var out []Square
	for i, p := range b.squares {
		if !p.IsNone() && p.Colour == c {
			out = append(out, squareAt(i))
		}
	}
	return out
}

// Count returns the number of pieces on the board.
func (b Board) Count() int {
	n := 0
	for _, p := range b.squares {
		if !p.IsNone() {
			n++
		}
	}
	return n
}

// KingSquare returns the square of colour c's king, or NoSquare.
func (b Board) KingSquare(c Colour) Square {
	king := NewPiece(King, c)
	for i, p := range b.squares {
		if p == king {
			return squareAt(i)
		}
	}
	return NoSquare
}

// With returns a board with p placed on sq, replacing any occupant.
func (b Board) With(sq Square, p Piece) Board {
	if sq.IsValid() {
		b.squares[sq.Index()] = p
	}
	return b
}

// Without returns a board with sq emptied.
func (b Board) Without(sq Square) Board {
	return b.With(sq, NoPiece)
}

// WithMoveApplied lifts the moving piece from its origin, clears the
// destination and places the piece there. When a pawn lands on
// enPassantTarget the pawn it passed is removed as well.
func (b Board) WithMoveApplied(m Move, enPassantTarget Square) Board {
	b = b.Without(m.Origin).Without(m.Destination)
	if m.Piece.Type == Pawn && enPassantTarget.IsValid() && m.Destination == enPassantTarget {
		b = b.Without(EnPassantVictim(m.Destination, m.Piece.Colour))
	}
	return b.With(m.Destination, m.Piece)
}

// WithPromotionApplied replaces the pawn on the destination with the
// promoted piece. Non-promoting moves leave the board unchanged.
func (b Board) WithPromotionApplied(m Move) Board {
	if !m.IsPromotion() {
		return b
	}
	return b.With(m.Destination, m.Placed())
}

// WithCastlingRookRelocated moves the castling rook from its home square
// to its destination. Non-castling moves leave the board unchanged.
func (b Board) WithCastlingRookRelocated(m Move) Board {
	var side CastlingSide
	switch {
	case m.IsKingCastle:
		side = Short
	case m.IsQueenCastle:
		side = Long
	default:
		return b
	}
	r := StandardCastlingRight(m.Piece.Colour, side)
	rook, ok := b.PieceAt(r.RookHome)
	if !ok {
		rook = NewPiece(Rook, m.Piece.Colour)
	}
	return b.Without(r.RookHome).With(r.RookDestination, rook)
}

// EnPassantVictim returns the square of the pawn captured when a pawn of
// colour c takes en passant on target: one rank behind it from c's side.
func EnPassantVictim(target Square, c Colour) Square {
	return target.Offset(0, -c.Forward())
}
