package chess

import "strings"

// CastlingSide distinguishes king-side from queen-side castling.
type CastlingSide int8

const (
	Short CastlingSide = iota // king-side, O-O
	Long                      // queen-side, O-O-O
)

// String returns "short" or "long".
func (s CastlingSide) String() string {
	if s == Short {
		return "short"
	}
	return "long"
}

// CastlingRight describes one of the four castles and whether it is
// still available. Possible never goes from false back to true within
// a game.
type CastlingRight struct {
	Colour Colour
	Side   CastlingSide

	KingHome        Square
	RookHome        Square
	KingDestination Square
	RookDestination Square

	Possible bool
}

// StandardCastlingRight returns the right for colour c and side s on a
// standard board, marked possible.
func StandardCastlingRight(c Colour, s CastlingSide) CastlingRight {
	rank := c.HomeRank()
	r := CastlingRight{
		Colour:   c,
		Side:     s,
		KingHome: NewSquare(5, rank),
		Possible: true,
	}
	if s == Short {
		r.RookHome = NewSquare(8, rank)
		r.KingDestination = NewSquare(7, rank)
		r.RookDestination = NewSquare(6, rank)
	} else {
		r.RookHome = NewSquare(1, rank)
		r.KingDestination = NewSquare(3, rank)
		r.RookDestination = NewSquare(4, rank)
	}
	return r
}

// Between returns the squares strictly between the king and rook home
// squares. All of them must be empty to castle.
func (r CastlingRight) Between() []Square {
	return span(r.KingHome, r.RookHome, false)
}

// KingPath returns the squares the king stands on or crosses: its home
// square, the transit square and its destination. None may be attacked.
func (r CastlingRight) KingPath() []Square {
	return span(r.KingHome, r.KingDestination, true)
}

// Letter returns the FEN letter of the right (K, Q, k or q).
func (r CastlingRight) Letter() byte {
	l := byte('K')
	if r.Side == Long {
		l = 'Q'
	}
	if r.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// span returns the squares on a rank from a towards b, excluding b
// unless inclusive is set. a itself is included only when inclusive.
func span(a, b Square, inclusive bool) []Square {
	step := 1
	if b.File < a.File {
		step = -1
	}
	var out []Square
	if inclusive {
		out = append(out, a)
	}
	for sq := a.Offset(step, 0); sq.IsValid() && sq != b; sq = sq.Offset(step, 0) {
		out = append(out, sq)
	}
	if inclusive {
		out = append(out, b)
	}
	return out
}

// CastlingRights holds the four rights in the order white short,
// white long, black short, black long.
type CastlingRights [4]CastlingRight

func rightIndex(c Colour, s CastlingSide) int {
	return int(c)*2 + int(s)
}

// NewCastlingRights returns standard rights with the given availability.
func NewCastlingRights(whiteShort, whiteLong, blackShort, blackLong bool) CastlingRights {
	var cr CastlingRights
	flags := [4]bool{whiteShort, whiteLong, blackShort, blackLong}
	for _, c := range []Colour{White, Black} {
		for _, s := range []CastlingSide{Short, Long} {
			i := rightIndex(c, s)
			cr[i] = StandardCastlingRight(c, s)
			cr[i].Possible = flags[i]
		}
	}
	return cr
}

// AllCastlingRights returns the rights at the start of a game.
func AllCastlingRights() CastlingRights {
	return NewCastlingRights(true, true, true, true)
}

// NoCastlingRights returns rights with every castle revoked.
func NoCastlingRights() CastlingRights {
	return NewCastlingRights(false, false, false, false)
}

// Get returns the right for colour c and side s.
func (cr CastlingRights) Get(c Colour, s CastlingSide) CastlingRight {
	return cr[rightIndex(c, s)]
}

// CanCastle reports whether the right for c and s is still possible.
func (cr CastlingRights) CanCastle(c Colour, s CastlingSide) bool {
	return cr.Get(c, s).Possible
}

// Revoked returns a copy with every right marked impossible.
func (cr CastlingRights) Revoked() CastlingRights {
	for i := range cr {
		cr[i].Possible = false
	}
	return cr
}

// WithUpdateAfterMove revokes every right the move invalidates: all of
// a colour's rights when its king moves, and a single right when its
// rook home square is the move's origin or destination. The latter
// covers both the rook moving away and the rook being captured at home.
func (cr CastlingRights) WithUpdateAfterMove(m Move) CastlingRights {
	for i, r := range cr {
		kingMoved := m.Piece.Type == King && m.Piece.Colour == r.Colour
		rookSquareTouched := m.Origin == r.RookHome || m.Destination == r.RookHome
		cr[i].Possible = r.Possible && !kingMoved && !rookSquareTouched
	}
	return cr
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (cr CastlingRights) String() string {
	var sb strings.Builder
	for _, r := range cr {
		if r.Possible {
			sb.WriteByte(r.Letter())
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
