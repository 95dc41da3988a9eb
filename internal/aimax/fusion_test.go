package aimax

import "testing"

func TestFuseRegisteredPairs(t *testing.T) {
	cases := []struct {
		mover, captured, want Kind
	}{
		{Pawn, Pawn, UpgradedCannon},
		{Pawn, Horse, UpgradedCar},
		{Pawn, Cannon, Chong},
		{Horse, Car, HorseCar},
		{Horse, Elephant, Jun},
		{Car, Cannon, Kui},
		{Car, Pawn, Wen},
		{Advisor, Advisor, Shi},
		// 按走法规则匹配
		{UpgradedCar, Pawn, Wen},
		{Pawn, UpgradedCannon, Chong},
		{Horse, UpgradedCar, HorseCar},
	}
	for _, side := range []Side{Red, Black} {
		for _, tc := range cases {
			got := Fuse(Piece{side, tc.mover}, Piece{side, tc.captured})
			want := Piece{side, tc.want}
			if got != want {
				t.Fatalf("Fuse(%v,%v) side %v = %+v want %+v", tc.mover, tc.captured, side, got, want)
			}
		}
	}
}

func TestFuseTotalAndDeterministic(t *testing.T) {
	for m := King; m < NumKinds; m++ {
		for c := King; c < NumKinds; c++ {
			mover := Piece{Red, m}
			captured := Piece{Red, c}

			got := Fuse(mover, captured)
			if again := Fuse(mover, captured); again != got {
				t.Fatalf("Fuse not deterministic for %v,%v", m, c)
			}
			if got != mover {
				k, ok := fusionTable[fusionKey{m.Rule(), c.Rule()}]
				if !ok || got != (Piece{Red, k}) {
					t.Fatalf("Fuse(%v,%v) = %+v outside table", m, c, got)
				}
			}

			// 不同颜色永远不变
			if got := Fuse(mover, Piece{Black, c}); got != mover {
				t.Fatalf("cross-color Fuse(%v,%v) changed mover: %+v", m, c, got)
			}
		}
	}
	if got := Fuse(Piece{Red, Pawn}, Empty); got != (Piece{Red, Pawn}) {
		t.Fatalf("Fuse with empty: %+v", got)
	}
}
