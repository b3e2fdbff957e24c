package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castlingMoves yields a castle for each right still possible whose king
// and rook stand at home, whose in-between squares are empty and whose
// king path is not attacked.
func (g generator) castlingMoves(origin chess.Square, king chess.Piece) []chess.Move {
	var (
		moves    []chess.Move
		attacked squareSet
		computed bool
	)
	for _, side := range []chess.CastlingSide{chess.Short, chess.Long} {
		r := g.rights.Get(king.Colour, side)
		if !r.Possible || origin != r.KingHome {
			continue
		}
		if rook, ok := g.board.PieceAt(r.RookHome); !ok || rook != chess.NewPiece(chess.Rook, king.Colour) {
			continue
		}
		if g.anyOccupied(r.Between()) {
			continue
		}
		if !computed {
			attacked = g.withoutCastling().attackedBy(king.Colour.Opposite())
			computed = true
		}
		if attacked.containsAny(r.KingPath()) {
			continue
		}
		moves = append(moves, chess.Move{
			Piece:         king,
			Origin:        origin,
			Destination:   r.KingDestination,
			IsKingCastle:  side == chess.Short,
			IsQueenCastle: side == chess.Long,
		})
	}
	return moves
}

func (g generator) anyOccupied(squares []chess.Square) bool {
	for _, sq := range squares {
		if g.board.IsOccupied(sq) {
			return true
		}
	}
	return false
}
