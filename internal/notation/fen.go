// Package notation converts between engine positions and FEN text.
//
// Decoding is delegated to github.com/notnil/chess, whose parsed position
// is mapped square by square onto an engine.Position. Encoding is written
// directly from the position's accessors.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN string into a position in the Created state.
// The clock fields may be omitted, in which case they default to "0 1".
func Decode(fen string) (engine.Position, error) {
	parts := strings.Fields(fen)
	switch len(parts) {
	case 4:
		parts = append(parts, "0", "1")
	case 6:
	default:
		return engine.Position{}, errors.Wrapf(errors.ErrInvalidFEN, "FEN %q has %d fields", fen, len(parts))
	}

	opt, err := nchess.FEN(strings.Join(parts, " "))
	if err != nil {
		return engine.Position{}, errors.Wrap(errors.ErrInvalidFEN, err.Error())
	}
	decoded := nchess.NewGame(opt).Position()

	half, full, err := parseClocks(parts[4], parts[5])
	if err != nil {
		return engine.Position{}, err
	}

	board, err := convertBoard(decoded.Board().SquareMap())
	if err != nil {
		return engine.Position{}, err
	}

	rights := decoded.CastleRights()
	return engine.NewPosition(engine.Setup{
		Board:      board,
		SideToMove: convertColour(decoded.Turn()),
		Castling: chess.NewCastlingRights(
			rights.CanCastle(nchess.White, nchess.KingSide),
			rights.CanCastle(nchess.White, nchess.QueenSide),
			rights.CanCastle(nchess.Black, nchess.KingSide),
			rights.CanCastle(nchess.Black, nchess.QueenSide),
		),
		EnPassant:      convertSquare(decoded.EnPassantSquare()),
		HalfMoveClock:  half,
		FullMoveNumber: full,
	}), nil
}

// MustDecode is like Decode but panics on error.
func MustDecode(fen string) engine.Position {
	pos, err := Decode(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(halfField, fullField string) (int, int, error) {
	half, err := strconv.Atoi(halfField)
	if err != nil || half < 0 {
		return 0, 0, errors.Wrapf(errors.ErrInvalidFEN, "halfmove clock %q", halfField)
	}
	full, err := strconv.Atoi(fullField)
	if err != nil || full < 1 {
		return 0, 0, errors.Wrapf(errors.ErrInvalidFEN, "fullmove number %q", fullField)
	}
	return half, full, nil
}

func convertBoard(squares map[nchess.Square]nchess.Piece) (chess.Board, error) {
	placement := make(map[chess.Square]chess.Piece, len(squares))
	for sq, p := range squares {
		pt, ok := pieceTypes[p.Type()]
		if !ok {
			return chess.Board{}, errors.Wrapf(errors.ErrInvalidFEN, "unknown piece %v on %v", p, sq)
		}
		placement[convertSquare(sq)] = chess.NewPiece(pt, convertColour(p.Color()))
	}
	return chess.NewBoard(placement), nil
}

var pieceTypes = map[nchess.PieceType]chess.PieceType{
	nchess.Pawn:   chess.Pawn,
	nchess.Knight: chess.Knight,
	nchess.Bishop: chess.Bishop,
	nchess.Rook:   chess.Rook,
	nchess.Queen:  chess.Queen,
	nchess.King:   chess.King,
}

func convertSquare(sq nchess.Square) chess.Square {
	if sq == nchess.NoSquare {
		return chess.NoSquare
	}
	return chess.NewSquare(int(sq.File())+1, int(sq.Rank())+1)
}

func convertColour(c nchess.Color) chess.Colour {
	if c == nchess.Black {
		return chess.Black
	}
	return chess.White
}

// Encode converts a position to a FEN string.
func Encode(pos engine.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos.Board())
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos.SideToMove())
	sb.WriteByte(' ')
	sb.WriteString(pos.CastlingRights().String())
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassantTarget().String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfMoveClock(), pos.FullMoveNumber())

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board chess.Board) {
	for rank := chess.BoardSize; rank >= 1; rank-- {
		emptyCount := 0
		for file := 1; file <= chess.BoardSize; file++ {
			piece, ok := board.PieceAt(chess.NewSquare(file, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, c chess.Colour) {
	if c == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}
