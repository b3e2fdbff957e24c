package chess

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Move represents a single pseudo-legal or legal move.
// Moves are values; the only field set after generation is IsCheck,
// which is stamped once the resulting position is known.
type Move struct {
	// The piece being moved.
	Piece Piece

	// Source and destination squares.
	Origin      Square
	Destination Square

	// The piece captured (NoPiece if no capture). For en passant this is
	// the opposing pawn, not the (empty) destination square.
	Captured Piece

	// The piece type promoted to (NoPieceType if not a promotion).
	PromotedTo PieceType

	IsKingCastle  bool
	IsQueenCastle bool
	IsEnPassant   bool

	// Whether this move gives check.
	IsCheck bool
}

// IsCapture reports whether the move removes an opposing piece.
func (m Move) IsCapture() bool {
	return !m.Captured.IsNone()
}

// IsCastle reports whether the move is either castle.
func (m Move) IsCastle() bool {
	return m.IsKingCastle || m.IsQueenCastle
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.PromotedTo != NoPieceType
}

// IsDoublePush reports whether the move is a pawn's two-square advance.
func (m Move) IsDoublePush() bool {
	if m.Piece.Type != Pawn {
		return false
	}
	dr := m.Destination.Rank - m.Origin.Rank
	return dr == 2 || dr == -2
}

// Placed returns the piece that ends up on the destination square.
func (m Move) Placed() Piece {
	if m.IsPromotion() {
		return NewPiece(m.PromotedTo, m.Piece.Colour)
	}
	return m.Piece
}

// WithCheck returns a copy of m with IsCheck set.
func (m Move) WithCheck() Move {
	m.IsCheck = true
	return m
}

// Command returns the MoveCommand that selects m.
func (m Move) Command() MoveCommand {
	return MoveCommand{Origin: m.Origin, Destination: m.Destination, Promotion: m.PromotedTo}
}

// String formats the move in long algebraic notation, e.g. "e2e4",
// "e7e8q". Castles are written as king moves ("e1g1").
func (m Move) String() string {
	return m.Command().String()
}

// MoveCommand is a request to move the piece on Origin to Destination.
// Promotion must be set exactly when a pawn reaches the far rank.
type MoveCommand struct {
	Origin      Square
	Destination Square
	Promotion   PieceType
}

// String formats the command in long algebraic notation.
func (c MoveCommand) String() string {
	var sb strings.Builder
	sb.WriteString(c.Origin.String())
	sb.WriteString(c.Destination.String())
	if c.Promotion != NoPieceType {
		sb.WriteByte(NewPiece(c.Promotion, Black).Letter())
	}
	return sb.String()
}

// ParseMoveCommand parses long algebraic text such as "e2e4" or "a7a8q".
// The promotion letter may be given in either case.
func ParseMoveCommand(s string) (MoveCommand, error) {
	if len(s) != 4 && len(s) != 5 {
		return MoveCommand{}, errors.Wrapf(errors.ErrParseFailure, "move %q", s)
	}

	origin, err := ParseSquare(s[0:2])
	if err != nil {
		return MoveCommand{}, errors.Wrapf(err, "move %q", s)
	}
	dest, err := ParseSquare(s[2:4])
	if err != nil {
		return MoveCommand{}, errors.Wrapf(err, "move %q", s)
	}

	cmd := MoveCommand{Origin: origin, Destination: dest}
	if len(s) == 5 {
		cmd.Promotion = PieceTypeFromLetter(s[4])
		if !cmd.Promotion.IsPromotable() {
			return MoveCommand{}, errors.Wrapf(errors.ErrParseFailure, "move %q: bad promotion piece", s)
		}
	}
	return cmd, nil
}

// ParseMoveCommands parses a sequence of long algebraic moves.
func ParseMoveCommands(moves []string) ([]MoveCommand, error) {
	cmds := make([]MoveCommand, 0, len(moves))
	for _, s := range moves {
		cmd, err := ParseMoveCommand(s)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}
