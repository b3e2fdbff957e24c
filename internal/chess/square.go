package chess

import "github.com/lgbarn/chessrules-go/internal/errors"

// Board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'a'
	RankBase = '1'
)

// Square is a board coordinate, file and rank both in 1..8.
// The zero value is NoSquare.
type Square struct {
	File int8
	Rank int8
}

// NoSquare is returned by lookups that fall off the board.
var NoSquare = Square{}

// NewSquare returns the square at (file, rank), or NoSquare when either
// coordinate lies outside 1..8.
func NewSquare(file, rank int) Square {
	if file < 1 || file > BoardSize || rank < 1 || rank > BoardSize {
		return NoSquare
	}
	return Square{File: int8(file), Rank: int8(rank)}
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, errors.Wrapf(errors.ErrParseFailure, "square %q", s)
	}
	sq := NewSquare(int(s[0]-FileBase)+1, int(s[1]-RankBase)+1)
	if !sq.IsValid() {
		return NoSquare, errors.Wrapf(errors.ErrParseFailure, "square %q", s)
	}
	return sq, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is meant for package-level tables and tests.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// IsValid reports whether s lies on the board.
func (s Square) IsValid() bool {
	return s.File >= 1 && s.File <= BoardSize && s.Rank >= 1 && s.Rank <= BoardSize
}

// String returns algebraic coordinates, or "-" for NoSquare.
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File - 1), byte(RankBase + s.Rank - 1)})
}

// Index maps a valid square to 0..63, a1 = 0, h8 = 63.
func (s Square) Index() int {
	return int(s.Rank-1)*BoardSize + int(s.File-1)
}

// squareAt is the inverse of Index.
func squareAt(i int) Square {
	return Square{File: int8(i%BoardSize + 1), Rank: int8(i/BoardSize + 1)}
}

// Direction is a single step across the board.
type Direction struct {
	File int
	Rank int
}

// The eight unit directions, from White's point of view.
var (
	Up        = Direction{0, 1}
	Down      = Direction{0, -1}
	Left      = Direction{-1, 0}
	Right     = Direction{1, 0}
	UpLeft    = Direction{-1, 1}
	UpRight   = Direction{1, 1}
	DownLeft  = Direction{-1, -1}
	DownRight = Direction{1, -1}
)

// Direction sets used by move generation.
var (
	OrthogonalDirections = []Direction{Up, Down, Left, Right}
	DiagonalDirections   = []Direction{UpLeft, UpRight, DownLeft, DownRight}
	AllDirections        = []Direction{Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight}
	KnightJumps          = []Direction{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
)

// Offset returns the square df files and dr ranks away, or NoSquare.
func (s Square) Offset(df, dr int) Square {
	if !s.IsValid() {
		return NoSquare
	}
	return NewSquare(int(s.File)+df, int(s.Rank)+dr)
}

// Neighbour returns the adjacent square in direction d, or NoSquare at the edge.
func (s Square) Neighbour(d Direction) Square {
	return s.Offset(d.File, d.Rank)
}

// Up returns the square one rank higher, or NoSquare.
func (s Square) Up() Square { return s.Neighbour(Up) }

// Down returns the square one rank lower, or NoSquare.
func (s Square) Down() Square { return s.Neighbour(Down) }

// Left returns the square one file towards the a-file, or NoSquare.
func (s Square) Left() Square { return s.Neighbour(Left) }

// Right returns the square one file towards the h-file, or NoSquare.
func (s Square) Right() Square { return s.Neighbour(Right) }

// UpLeft returns the diagonal neighbour, or NoSquare.
func (s Square) UpLeft() Square { return s.Neighbour(UpLeft) }

// UpRight returns the diagonal neighbour, or NoSquare.
func (s Square) UpRight() Square { return s.Neighbour(UpRight) }

// DownLeft returns the diagonal neighbour, or NoSquare.
func (s Square) DownLeft() Square { return s.Neighbour(DownLeft) }

// DownRight returns the diagonal neighbour, or NoSquare.
func (s Square) DownRight() Square { return s.Neighbour(DownRight) }
