package aimax

import (
	"strings"
	"testing"
)

// mustBoard 按行给出盘面，第一个参数是第 0 行
func mustBoard(t *testing.T, rows ...string) Board {
	t.Helper()
	if len(rows) != Rows {
		t.Fatalf("need %d rows, got %d", Rows, len(rows))
	}
	return parseBoard(strings.Join(rows, "\n"))
}

func TestInitialLayout(t *testing.T) {
	b := NewInitialBoard()
	cases := []struct {
		row, col int
		want     Piece
	}{
		{0, 4, Piece{Red, King}},
		{0, 0, Piece{Red, Car}},
		{2, 1, Piece{Red, Cannon}},
		{3, 8, Piece{Red, Pawn}},
		{9, 4, Piece{Black, King}},
		{7, 7, Piece{Black, Cannon}},
		{6, 0, Piece{Black, Pawn}},
		{4, 4, Empty},
	}
	for _, tc := range cases {
		if got := b.At(tc.row, tc.col); got != tc.want {
			t.Fatalf("(%d,%d): got %+v want %+v", tc.row, tc.col, got, tc.want)
		}
	}
	red, black := b.PieceCount()
	if red != 16 || black != 16 {
		t.Fatalf("piece count: red=%d black=%d", red, black)
	}
	if b.String() != initialBoardString {
		t.Fatalf("String() mismatch:\n%s", b.String())
	}
}

func TestPalace(t *testing.T) {
	cases := []struct {
		row, col int
		side     Side
		want     bool
	}{
		{0, 3, Red, true},
		{2, 5, Red, true},
		{3, 4, Red, false},
		{1, 2, Red, false},
		{7, 4, Black, true},
		{9, 5, Black, true},
		{6, 4, Black, false},
		{1, 4, Black, false},
	}
	for _, tc := range cases {
		if got := InPalace(Sq(tc.row, tc.col), tc.side); got != tc.want {
			t.Fatalf("InPalace(%d,%d,%v)=%v want %v", tc.row, tc.col, tc.side, got, tc.want)
		}
	}
	if InPalace(NoSquare, Red) {
		t.Fatalf("NoSquare must not be in a palace")
	}
}

func TestKindRule(t *testing.T) {
	if UpgradedCannon.Rule() != Cannon || UpgradedCar.Rule() != Car {
		t.Fatalf("upgraded pieces must move like their base pieces")
	}
	for k := King; k <= Pawn; k++ {
		if k.Composite() {
			t.Fatalf("%v is not composite", k)
		}
		if k.Rule() != k {
			t.Fatalf("%v rule = %v", k, k.Rule())
		}
	}
	for k := UpgradedCannon; k < NumKinds; k++ {
		if !k.Composite() {
			t.Fatalf("%v should be composite", k)
		}
	}
}
