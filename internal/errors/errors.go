// Package errors provides sentinel errors and error types for the rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrPieceNotFound indicates there is no piece on the requested origin square.
	ErrPieceNotFound = errors.New("piece not found")

	// ErrIllegalMove indicates the requested destination or promotion is not
	// among the piece's pseudo-legal moves.
	ErrIllegalMove = errors.New("illegal move")

	// ErrOwnKingLeftInCheck indicates a pseudo-legal move that leaves the
	// mover's own king attacked.
	ErrOwnKingLeftInCheck = errors.New("own king left in check")

	// ErrGameOver indicates a move was requested in a finished game.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrParseFailure indicates malformed square or move text.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejected move with the command text and the ply at
// which it was attempted. It implements the error interface and supports
// unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err     error  // The underlying sentinel
	Command string // Long algebraic text of the rejected command (e.g. "e2e5")
	Ply     int    // 1-based ply the move would have been (0 if not applicable)
	Detail  string // Optional extra context
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Command != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Command))
	}
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "move error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
