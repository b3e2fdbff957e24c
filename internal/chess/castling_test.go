package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStandardCastlingRight(t *testing.T) {
	r := StandardCastlingRight(White, Long)

	if r.KingHome != sq("e1") || r.RookHome != sq("a1") {
		t.Errorf("homes = %v, %v; want e1, a1", r.KingHome, r.RookHome)
	}
	if r.KingDestination != sq("c1") || r.RookDestination != sq("d1") {
		t.Errorf("destinations = %v, %v; want c1, d1", r.KingDestination, r.RookDestination)
	}
	if diff := cmp.Diff([]Square{sq("d1"), sq("c1"), sq("b1")}, r.Between()); diff != "" {
		t.Errorf("Between() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Square{sq("e1"), sq("d1"), sq("c1")}, r.KingPath()); diff != "" {
		t.Errorf("KingPath() mismatch (-want +got):\n%s", diff)
	}

	short := StandardCastlingRight(Black, Short)
	if diff := cmp.Diff([]Square{sq("f8"), sq("g8")}, short.Between()); diff != "" {
		t.Errorf("Between() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Square{sq("e8"), sq("f8"), sq("g8")}, short.KingPath()); diff != "" {
		t.Errorf("KingPath() mismatch (-want +got):\n%s", diff)
	}
}

func TestCastlingRightsString(t *testing.T) {
	tests := []struct {
		rights CastlingRights
		want   string
	}{
		{AllCastlingRights(), "KQkq"},
		{NoCastlingRights(), "-"},
		{NewCastlingRights(true, false, false, true), "Kq"},
		{NewCastlingRights(false, true, true, false), "Qk"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.rights.String(); got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestWithUpdateAfterMove(t *testing.T) {
	tests := []struct {
		name string
		move Move
		want string
	}{
		{
			name: "quiet pawn move keeps everything",
			move: Move{Piece: W(Pawn), Origin: sq("e2"), Destination: sq("e4")},
			want: "KQkq",
		},
		{
			name: "white king move revokes both white rights",
			move: Move{Piece: W(King), Origin: sq("e1"), Destination: sq("e2")},
			want: "kq",
		},
		{
			name: "white castle revokes both white rights",
			move: Move{Piece: W(King), Origin: sq("e1"), Destination: sq("g1"), IsKingCastle: true},
			want: "kq",
		},
		{
			name: "black h-rook move revokes black short",
			move: Move{Piece: B(Rook), Origin: sq("h8"), Destination: sq("h5")},
			want: "KQq",
		},
		{
			name: "capture on a1 revokes white long",
			move: Move{Piece: B(Bishop), Origin: sq("g7"), Destination: sq("a1"), Captured: W(Rook)},
			want: "Kkq",
		},
		{
			name: "rook capturing rook on home squares",
			move: Move{Piece: W(Rook), Origin: sq("a1"), Destination: sq("a8"), Captured: B(Rook)},
			want: "Kk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AllCastlingRights().WithUpdateAfterMove(tt.move).String(); got != tt.want {
				t.Errorf("WithUpdateAfterMove() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestWithUpdateAfterMoveIsMonotonic(t *testing.T) {
	rights := NewCastlingRights(false, true, true, false)
	moves := []Move{
		{Piece: W(Knight), Origin: sq("b1"), Destination: sq("c3")},
		{Piece: B(Knight), Origin: sq("g8"), Destination: sq("f6")},
		{Piece: W(Rook), Origin: sq("h1"), Destination: sq("h2")},
	}

	for _, m := range moves {
		next := rights.WithUpdateAfterMove(m)
		for i := range next {
			if next[i].Possible && !rights[i].Possible {
				t.Fatalf("right %c restored by %v", next[i].Letter(), m)
			}
		}
		rights = next
	}
	if got := rights.String(); got != "Qk" {
		t.Errorf("String() = %q; want %q", got, "Qk")
	}
}
