package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sq(s string) Square { return MustParseSquare(s) }

func TestStandardBoard(t *testing.T) {
	b := StandardBoard()

	tests := []struct {
		name   string
		square string
		piece  Piece
	}{
		{"white rook a1", "a1", W(Rook)},
		{"white knight b1", "b1", W(Knight)},
		{"white bishop c1", "c1", W(Bishop)},
		{"white queen d1", "d1", W(Queen)},
		{"white king e1", "e1", W(King)},
		{"white pawn e2", "e2", W(Pawn)},
		{"black pawn d7", "d7", B(Pawn)},
		{"black queen d8", "d8", B(Queen)},
		{"black king e8", "e8", B(King)},
		{"black rook h8", "h8", B(Rook)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.PieceAt(sq(tt.square))
			if !ok || got != tt.piece {
				t.Errorf("PieceAt(%s) = %v, %v; want %v, true", tt.square, got, ok, tt.piece)
			}
		})
	}

	t.Run("middle is empty", func(t *testing.T) {
		for rank := 3; rank <= 6; rank++ {
			for file := 1; file <= 8; file++ {
				if s := NewSquare(file, rank); b.IsOccupied(s) {
					t.Errorf("IsOccupied(%s) = true; want false", s)
				}
			}
		}
	})

	if got := b.Count(); got != 32 {
		t.Errorf("Count() = %d; want 32", got)
	}
	if got := b.KingSquare(Black); got != sq("e8") {
		t.Errorf("KingSquare(Black) = %v; want e8", got)
	}
}

func TestBoardIsOccupiedByColour(t *testing.T) {
	b := StandardBoard()

	if !b.IsOccupiedByColour(sq("a2"), White) {
		t.Error("IsOccupiedByColour(a2, White) = false; want true")
	}
	if b.IsOccupiedByColour(sq("a2"), Black) {
		t.Error("IsOccupiedByColour(a2, Black) = true; want false")
	}
	if b.IsOccupiedByColour(sq("a4"), White) {
		t.Error("IsOccupiedByColour(a4, White) = true; want false")
	}
	if b.IsOccupiedByColour(NoSquare, White) {
		t.Error("IsOccupiedByColour(NoSquare, White) = true; want false")
	}
}

func TestBoardIsValue(t *testing.T) {
	b := StandardBoard()
	_ = b.Without(sq("e2"))

	if !b.IsOccupied(sq("e2")) {
		t.Error("Without() modified the receiver")
	}

	pieces := b.Pieces()
	delete(pieces, sq("e1"))
	if !b.IsOccupied(sq("e1")) {
		t.Error("Pieces() returned a shared map")
	}
}

func TestWithMoveApplied(t *testing.T) {
	tests := []struct {
		name     string
		board    map[Square]Piece
		move     Move
		epTarget Square
		want     map[Square]Piece
	}{
		{
			name:  "quiet move",
			board: map[Square]Piece{sq("g1"): W(Knight)},
			move:  Move{Piece: W(Knight), Origin: sq("g1"), Destination: sq("f3")},
			want:  map[Square]Piece{sq("f3"): W(Knight)},
		},
		{
			name:  "capture replaces occupant",
			board: map[Square]Piece{sq("d1"): W(Queen), sq("d7"): B(Pawn)},
			move:  Move{Piece: W(Queen), Origin: sq("d1"), Destination: sq("d7"), Captured: B(Pawn)},
			want:  map[Square]Piece{sq("d7"): W(Queen)},
		},
		{
			name:     "white en passant removes pawn behind target",
			board:    map[Square]Piece{sq("e5"): W(Pawn), sq("d5"): B(Pawn), sq("d6"): NoPiece},
			move:     Move{Piece: W(Pawn), Origin: sq("e5"), Destination: sq("d6"), Captured: B(Pawn), IsEnPassant: true},
			epTarget: sq("d6"),
			want:     map[Square]Piece{sq("d6"): W(Pawn)},
		},
		{
			name:     "black en passant removes pawn behind target",
			board:    map[Square]Piece{sq("b4"): B(Pawn), sq("c4"): W(Pawn)},
			move:     Move{Piece: B(Pawn), Origin: sq("b4"), Destination: sq("c3"), Captured: W(Pawn), IsEnPassant: true},
			epTarget: sq("c3"),
			want:     map[Square]Piece{sq("c3"): B(Pawn)},
		},
		{
			name:     "non-pawn landing on target keeps pawn",
			board:    map[Square]Piece{sq("b4"): W(Knight), sq("c4"): W(Pawn)},
			move:     Move{Piece: W(Knight), Origin: sq("b4"), Destination: sq("c6")},
			epTarget: sq("c6"),
			want:     map[Square]Piece{sq("c4"): W(Pawn), sq("c6"): W(Knight)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewBoard(tt.board).WithMoveApplied(tt.move, tt.epTarget).Pieces()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("WithMoveApplied() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWithPromotionApplied(t *testing.T) {
	m := Move{Piece: B(Pawn), Origin: sq("b2"), Destination: sq("a1"), Captured: W(Rook), PromotedTo: Knight}
	b := NewBoard(map[Square]Piece{sq("b2"): B(Pawn), sq("a1"): W(Rook)})

	got := b.WithMoveApplied(m, NoSquare).WithPromotionApplied(m)
	if p, _ := got.PieceAt(sq("a1")); p != B(Knight) {
		t.Errorf("PieceAt(a1) = %v; want %v", p, B(Knight))
	}

	quiet := Move{Piece: W(Pawn), Origin: sq("a2"), Destination: sq("a3")}
	before := NewBoard(map[Square]Piece{sq("a3"): W(Pawn)})
	if after := before.WithPromotionApplied(quiet); after != before {
		t.Error("WithPromotionApplied() changed the board for a non-promotion")
	}
}

func TestWithCastlingRookRelocated(t *testing.T) {
	tests := []struct {
		name string
		move Move
		from string
		to   string
		rook Piece
	}{
		{"white short", Move{Piece: W(King), Origin: sq("e1"), Destination: sq("g1"), IsKingCastle: true}, "h1", "f1", W(Rook)},
		{"white long", Move{Piece: W(King), Origin: sq("e1"), Destination: sq("c1"), IsQueenCastle: true}, "a1", "d1", W(Rook)},
		{"black short", Move{Piece: B(King), Origin: sq("e8"), Destination: sq("g8"), IsKingCastle: true}, "h8", "f8", B(Rook)},
		{"black long", Move{Piece: B(King), Origin: sq("e8"), Destination: sq("c8"), IsQueenCastle: true}, "a8", "d8", B(Rook)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(map[Square]Piece{sq(tt.from): tt.rook}).WithCastlingRookRelocated(tt.move)
			if b.IsOccupied(sq(tt.from)) {
				t.Errorf("rook still on %s", tt.from)
			}
			if p, _ := b.PieceAt(sq(tt.to)); p != tt.rook {
				t.Errorf("PieceAt(%s) = %v; want %v", tt.to, p, tt.rook)
			}
		})
	}
}

func TestEnPassantVictim(t *testing.T) {
	if got := EnPassantVictim(sq("d6"), White); got != sq("d5") {
		t.Errorf("EnPassantVictim(d6, White) = %v; want d5", got)
	}
	if got := EnPassantVictim(sq("e3"), Black); got != sq("e4") {
		t.Errorf("EnPassantVictim(e3, Black) = %v; want e4", got)
	}
}
