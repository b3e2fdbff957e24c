package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ApplyMove plays cmd in pos and returns the resulting position.
//
// The error, if any, is a *errors.MoveError wrapping ErrGameOver,
// ErrPieceNotFound, ErrIllegalMove or ErrOwnKingLeftInCheck. On error the
// returned Position is the zero value and pos remains the current state.
func ApplyMove(cmd chess.MoveCommand, pos Position) (Position, error) {
	fail := func(err error, detail string) (Position, error) {
		return Position{}, &errors.MoveError{Err: err, Command: cmd.String(), Ply: pos.Ply() + 1, Detail: detail}
	}

	if pos.status.IsTerminal() {
		return fail(errors.ErrGameOver, "game ended by "+pos.termination.String())
	}

	piece, ok := pos.board.PieceAt(cmd.Origin)
	if !ok {
		return fail(errors.ErrPieceNotFound, "no piece on "+cmd.Origin.String())
	}
	if piece.Colour != pos.sideToMove {
		return fail(errors.ErrIllegalMove, pos.sideToMove.String()+" to move")
	}

	candidates := GeneratePseudoLegalMoves(pos, cmd.Origin)
	move, ok := findMove(candidates, cmd)
	if !ok {
		return fail(errors.ErrIllegalMove, promotionMismatch(candidates, cmd))
	}

	next, ok := tryMove(pos, move)
	if !ok {
		return fail(errors.ErrOwnKingLeftInCheck, "")
	}
	return evaluate(next), nil
}

// ApplyMoves plays a sequence of commands, stopping at the first error.
func ApplyMoves(pos Position, cmds ...chess.MoveCommand) (Position, error) {
	for _, cmd := range cmds {
		next, err := ApplyMove(cmd, pos)
		if err != nil {
			return Position{}, err
		}
		pos = next
	}
	return pos, nil
}

// findMove selects the generated move matching cmd. Promotion must match
// exactly: a far-rank pawn move needs a piece and other moves must not
// name one.
func findMove(moves []chess.Move, cmd chess.MoveCommand) (chess.Move, bool) {
	for _, m := range moves {
		if m.Destination == cmd.Destination && m.PromotedTo == cmd.Promotion {
			return m, true
		}
	}
	return chess.Move{}, false
}

// promotionMismatch explains a rejected command whose destination is
// reachable, but only with a different promotion choice. It returns ""
// when the destination is not reachable at all.
func promotionMismatch(moves []chess.Move, cmd chess.MoveCommand) string {
	for _, m := range moves {
		if m.Destination != cmd.Destination {
			continue
		}
		if cmd.Promotion == chess.NoPieceType {
			return "promotion piece required"
		}
		if !m.IsPromotion() {
			return "move does not promote"
		}
	}
	return ""
}

// tryMove advances pos by a pseudo-legal move and rejects it if the
// mover's king is left attacked. Checks against the opponent are stamped
// on the recorded move; the outcome is not evaluated.
func tryMove(pos Position, m chess.Move) (Position, bool) {
	next := advance(pos, m)
	g := newGenerator(next)
	if g.kingAttacked(m.Piece.Colour) {
		return Position{}, false
	}
	if g.kingAttacked(next.sideToMove) {
		next.history[len(next.history)-1] = m.WithCheck()
	}
	return next, true
}

// advance performs the mechanical part of a move: board transforms, side
// to move, castling rights, en-passant target, history and clocks.
func advance(pos Position, m chess.Move) Position {
	next := pos

	next.board = pos.board.
		WithMoveApplied(m, pos.enPassant).
		WithPromotionApplied(m).
		WithCastlingRookRelocated(m)
	next.sideToMove = m.Piece.Colour.Opposite()
	next.castling = pos.castling.WithUpdateAfterMove(m)

	next.enPassant = chess.NoSquare
	if m.IsDoublePush() {
		next.enPassant = m.Origin.Offset(0, m.Piece.Colour.Forward())
	}

	history := make([]chess.Move, len(pos.history), len(pos.history)+1)
	copy(history, pos.history)
	next.history = append(history, m)

	if m.IsCapture() || m.Piece.Type == chess.Pawn {
		next.halfMoveClock = 0
	} else {
		next.halfMoveClock = pos.halfMoveClock + 1
	}
	if m.Piece.Colour == chess.Black {
		next.fullMoveNumber = pos.fullMoveNumber + 1
	}

	next.status = chess.Started
	next.termination = chess.NoTermination
	return next
}
