package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// generator produces pseudo-legal moves for one board state.
// Castling candidates are produced only for rights still marked possible,
// so a generator from withoutCastling never recurses into attack detection.
type generator struct {
	board     chess.Board
	rights    chess.CastlingRights
	enPassant chess.Square
}

func newGenerator(pos Position) generator {
	return generator{board: pos.board, rights: pos.castling, enPassant: pos.enPassant}
}

// withoutCastling returns a generator with every castling right forced off.
func (g generator) withoutCastling() generator {
	g.rights = g.rights.Revoked()
	return g
}

// GeneratePseudoLegalMoves returns the pseudo-legal moves of the piece on
// origin, or nil if the square is empty.
func GeneratePseudoLegalMoves(pos Position, origin chess.Square) []chess.Move {
	return newGenerator(pos).movesFrom(origin)
}

// GenerateAllPseudoLegalMoves returns the pseudo-legal moves of every
// piece of colour c.
func GenerateAllPseudoLegalMoves(c chess.Colour, pos Position) []chess.Move {
	return newGenerator(pos).movesFor(c)
}

func (g generator) movesFor(c chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, sq := range g.board.Squares(c) {
		moves = append(moves, g.movesFrom(sq)...)
	}
	return moves
}

func (g generator) movesFrom(origin chess.Square) []chess.Move {
	piece, ok := g.board.PieceAt(origin)
	if !ok {
		return nil
	}

	switch piece.Type {
	case chess.Pawn:
		return g.pawnMoves(origin, piece)
	case chess.Knight:
		return g.stepMoves(origin, piece, chess.KnightJumps)
	case chess.Bishop:
		return g.slidingMoves(origin, piece, chess.DiagonalDirections)
	case chess.Rook:
		return g.slidingMoves(origin, piece, chess.OrthogonalDirections)
	case chess.Queen:
		return g.slidingMoves(origin, piece, chess.AllDirections)
	case chess.King:
		moves := g.stepMoves(origin, piece, chess.AllDirections)
		return append(moves, g.castlingMoves(origin, piece)...)
	}
	return nil
}

// slidingMoves walks each direction until the edge, stopping at the first
// occupied square, which is a capture if it holds an enemy piece.
func (g generator) slidingMoves(origin chess.Square, piece chess.Piece, dirs []chess.Direction) []chess.Move {
	var moves []chess.Move
	for _, d := range dirs {
		for dest := origin.Neighbour(d); dest.IsValid(); dest = dest.Neighbour(d) {
			target, occupied := g.board.PieceAt(dest)
			if !occupied {
				moves = append(moves, chess.Move{Piece: piece, Origin: origin, Destination: dest})
				continue
			}
			if target.Colour != piece.Colour {
				moves = append(moves, chess.Move{Piece: piece, Origin: origin, Destination: dest, Captured: target})
			}
			break
		}
	}
	return moves
}

// stepMoves handles knights and the king's ordinary moves.
func (g generator) stepMoves(origin chess.Square, piece chess.Piece, offsets []chess.Direction) []chess.Move {
	var moves []chess.Move
	for _, d := range offsets {
		dest := origin.Neighbour(d)
		if !dest.IsValid() || g.board.IsOccupiedByColour(dest, piece.Colour) {
			continue
		}
		target, _ := g.board.PieceAt(dest)
		moves = append(moves, chess.Move{Piece: piece, Origin: origin, Destination: dest, Captured: target})
	}
	return moves
}

func (g generator) pawnMoves(origin chess.Square, pawn chess.Piece) []chess.Move {
	var moves []chess.Move
	fwd := pawn.Colour.Forward()

	one := origin.Offset(0, fwd)
	if one.IsValid() && !g.board.IsOccupied(one) {
		moves = appendPawnMove(moves, chess.Move{Piece: pawn, Origin: origin, Destination: one})

		two := one.Offset(0, fwd)
		if int(origin.Rank) == pawn.Colour.PawnRank() && two.IsValid() && !g.board.IsOccupied(two) {
			moves = append(moves, chess.Move{Piece: pawn, Origin: origin, Destination: two})
		}
	}

	for _, df := range []int{-1, 1} {
		dest := origin.Offset(df, fwd)
		if !dest.IsValid() {
			continue
		}
		if target, ok := g.board.PieceAt(dest); ok {
			if target.Colour != pawn.Colour {
				moves = appendPawnMove(moves, chess.Move{Piece: pawn, Origin: origin, Destination: dest, Captured: target})
			}
			continue
		}
		if dest != g.enPassant {
			continue
		}
		// The captured pawn stands behind the empty target square.
		victim, ok := g.board.PieceAt(chess.EnPassantVictim(dest, pawn.Colour))
		if ok && victim == chess.NewPiece(chess.Pawn, pawn.Colour.Opposite()) {
			moves = append(moves, chess.Move{
				Piece:       pawn,
				Origin:      origin,
				Destination: dest,
				Captured:    victim,
				IsEnPassant: true,
			})
		}
	}
	return moves
}

// appendPawnMove expands a move onto the far rank into one move per
// promotion piece.
func appendPawnMove(moves []chess.Move, m chess.Move) []chess.Move {
	if int(m.Destination.Rank) != m.Piece.Colour.PromotionRank() {
		return append(moves, m)
	}
	for _, pt := range chess.PromotionTypes {
		m.PromotedTo = pt
		moves = append(moves, m)
	}
	return moves
}
