package chess

import (
	"errors"
	"strings"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestParseMoveCommand(t *testing.T) {
	tests := []struct {
		input   string
		want    MoveCommand
		wantErr bool
	}{
		{"e2e4", MoveCommand{Origin: sq("e2"), Destination: sq("e4")}, false},
		{"e7e8q", MoveCommand{Origin: sq("e7"), Destination: sq("e8"), Promotion: Queen}, false},
		{"b2a1N", MoveCommand{Origin: sq("b2"), Destination: sq("a1"), Promotion: Knight}, false},
		{"e7e8k", MoveCommand{}, true},
		{"e7e8p", MoveCommand{}, true},
		{"e2e9", MoveCommand{}, true},
		{"e2", MoveCommand{}, true},
		{"", MoveCommand{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMoveCommand(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMoveCommand(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMoveCommand(%q) = %+v; want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		name string
		move Move
		want string
	}{
		{"pawn push", Move{Piece: W(Pawn), Origin: sq("e2"), Destination: sq("e4")}, "e2e4"},
		{"promotion", Move{Piece: W(Pawn), Origin: sq("a7"), Destination: sq("a8"), PromotedTo: Rook}, "a7a8r"},
		{"castle", Move{Piece: B(King), Origin: sq("e8"), Destination: sq("c8"), IsQueenCastle: true}, "e8c8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move.String(); got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestMovePredicates(t *testing.T) {
	double := Move{Piece: B(Pawn), Origin: sq("d7"), Destination: sq("d5")}
	if !double.IsDoublePush() {
		t.Error("IsDoublePush() = false for d7d5")
	}
	single := Move{Piece: B(Pawn), Origin: sq("d7"), Destination: sq("d6")}
	if single.IsDoublePush() {
		t.Error("IsDoublePush() = true for d7d6")
	}

	promo := Move{Piece: W(Pawn), Origin: sq("g7"), Destination: sq("h8"), Captured: B(Rook), PromotedTo: Queen}
	if !promo.IsCapture() || !promo.IsPromotion() {
		t.Error("promotion capture not reported as capture and promotion")
	}
	if promo.Placed() != W(Queen) {
		t.Errorf("Placed() = %v; want %v", promo.Placed(), W(Queen))
	}

	checked := promo.WithCheck()
	if promo.IsCheck || !checked.IsCheck {
		t.Error("WithCheck() must return a stamped copy")
	}
}

func TestParseMoveCommand_ErrorContext(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"e2", []string{`move "e2"`}},
		{"z2e4", []string{`move "z2e4"`, `square "z2"`}},
		{"e7e8k", []string{`move "e7e8k"`, "bad promotion piece"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseMoveCommand(tt.in)
			if !errors.Is(err, chesserrors.ErrParseFailure) {
				t.Fatalf("ParseMoveCommand(%q) error = %v; want ErrParseFailure", tt.in, err)
			}
			for _, w := range tt.want {
				if !strings.Contains(err.Error(), w) {
					t.Errorf("ParseMoveCommand(%q) error %q missing %q", tt.in, err.Error(), w)
				}
			}
		})
	}
}
