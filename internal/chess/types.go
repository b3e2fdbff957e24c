// Package chess provides the value types shared by the rules engine:
// colours, pieces, squares, moves, boards and castling rights.
//
// Every type in this package is an immutable value. Operations that
// "change" a value return a new one and leave the receiver untouched.
package chess

// Colour represents the colour of a piece or player.
type Colour int8

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (pawn direction along ranks).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank the colour's king and rooks start on.
func (c Colour) HomeRank() int {
	if c == White {
		return 1
	}
	return 8
}

// PawnRank returns the rank the colour's pawns start on.
func (c Colour) PawnRank() int {
	if c == White {
		return 2
	}
	return 7
}

// PromotionRank returns the far rank on which the colour's pawns promote.
func (c Colour) PromotionRank() int {
	if c == White {
		return 8
	}
	return 1
}

// PieceType represents the kind of a chess piece, independent of colour.
type PieceType int8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PromotionTypes lists the piece types a pawn may promote to, strongest first.
var PromotionTypes = [...]PieceType{Queen, Rook, Bishop, Knight}

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// IsPromotable reports whether a pawn may promote to this piece type.
func (p PieceType) IsPromotable() bool {
	switch p {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// PieceTypeFromLetter converts a piece letter (either case) to a piece type.
// It returns NoPieceType for anything else.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPieceType
	}
}

// Piece is a coloured piece. The zero value is NoPiece.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// NoPiece marks the absence of a piece (empty square, quiet move).
var NoPiece = Piece{}

// NewPiece creates a piece of the given type and colour.
func NewPiece(t PieceType, c Colour) Piece {
	return Piece{Type: t, Colour: c}
}

// W creates a white piece.
func W(t PieceType) Piece {
	return NewPiece(t, White)
}

// B creates a black piece.
func B(t PieceType) Piece {
	return NewPiece(t, Black)
}

// IsNone reports whether p is NoPiece.
func (p Piece) IsNone() bool {
	return p.Type == NoPieceType
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Letter() byte {
	l := p.Type.Letter()
	if p.Colour == Black && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight", or "None" for NoPiece.
func (p Piece) String() string {
	if p.IsNone() {
		return "None"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// Status is the lifecycle state of a game.
type Status int8

const (
	Created Status = iota
	Started
	WhiteWin
	BlackWin
	Draw
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Created:
		return "Created"
	case Started:
		return "Started"
	case WhiteWin:
		return "WhiteWin"
	case BlackWin:
		return "BlackWin"
	case Draw:
		return "Draw"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether no further moves may be played.
func (s Status) IsTerminal() bool {
	return s == WhiteWin || s == BlackWin || s == Draw
}

// WinFor returns the winning status for the given colour.
func WinFor(c Colour) Status {
	if c == White {
		return WhiteWin
	}
	return BlackWin
}

// Termination records why a game reached a terminal status.
type Termination int8

const (
	NoTermination Termination = iota
	Checkmate
	Stalemate
	FiftyMoveRule
	Repetition
)

// String returns the string representation of a termination reason.
func (t Termination) String() string {
	switch t {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case FiftyMoveRule:
		return "fifty-move rule"
	case Repetition:
		return "repetition"
	default:
		return "none"
	}
}
