// Package engine implements the rules of chess on top of the value types
// in package chess: pseudo-legal move generation, legality checking, move
// application and game outcome evaluation.
//
// A Position is never modified in place. ApplyMove returns a new Position
// and the caller keeps the previous one, which makes positions safe to
// share between goroutines.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Position is the complete state of a game after some sequence of moves.
type Position struct {
	board          chess.Board
	sideToMove     chess.Colour
	castling       chess.CastlingRights
	enPassant      chess.Square
	history        []chess.Move
	halfMoveClock  int
	fullMoveNumber int
	status         chess.Status
	termination    chess.Termination
}

// Setup describes a position to construct, typically from imported notation.
type Setup struct {
	Board          chess.Board
	SideToMove     chess.Colour
	Castling       chess.CastlingRights
	EnPassant      chess.Square
	HalfMoveClock  int
	FullMoveNumber int // defaults to 1
}

// NewPosition builds a position in the Created state from s.
func NewPosition(s Setup) Position {
	full := s.FullMoveNumber
	if full < 1 {
		full = 1
	}
	half := s.HalfMoveClock
	if half < 0 {
		half = 0
	}
	return Position{
		board:          s.Board,
		sideToMove:     s.SideToMove,
		castling:       s.Castling,
		enPassant:      s.EnPassant,
		halfMoveClock:  half,
		fullMoveNumber: full,
		status:         chess.Created,
	}
}

// NewGame returns the standard starting position.
func NewGame() Position {
	return NewPosition(Setup{
		Board:      chess.StandardBoard(),
		SideToMove: chess.White,
		Castling:   chess.AllCastlingRights(),
	})
}

// Board returns the piece placement.
func (p Position) Board() chess.Board { return p.board }

// SideToMove returns the colour whose turn it is.
func (p Position) SideToMove() chess.Colour { return p.sideToMove }

// CastlingRights returns the four castling rights.
func (p Position) CastlingRights() chess.CastlingRights { return p.castling }

// EnPassantTarget returns the square a pawn may capture onto en passant,
// or NoSquare. It is set only for the ply after a double pawn push.
func (p Position) EnPassantTarget() chess.Square { return p.enPassant }

// HalfMoveClock returns the plies since the last capture or pawn move.
func (p Position) HalfMoveClock() int { return p.halfMoveClock }

// FullMoveNumber returns the move counter, incremented after Black moves.
func (p Position) FullMoveNumber() int { return p.fullMoveNumber }

// Status returns the lifecycle state of the game.
func (p Position) Status() chess.Status { return p.status }

// Termination returns why the game ended, or NoTermination.
func (p Position) Termination() chess.Termination { return p.termination }

// Ply returns the number of moves played to reach this position.
func (p Position) Ply() int { return len(p.history) }

// History returns a copy of the moves played so far.
func (p Position) History() []chess.Move {
	out := make([]chess.Move, len(p.history))
	copy(out, p.history)
	return out
}

// LastMove returns the most recent move, if any.
func (p Position) LastMove() (chess.Move, bool) {
	if len(p.history) == 0 {
		return chess.Move{}, false
	}
	return p.history[len(p.history)-1], true
}

// InCheck reports whether the side to move is in check.
func (p Position) InCheck() bool {
	return IsInCheck(p.sideToMove, p)
}
