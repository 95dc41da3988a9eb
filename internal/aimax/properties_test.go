package aimax

import (
	"math/rand"
	"testing"
)

// 随机对局，沿途检查走法生成的几个不变量
func TestRandomPlayoutInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(20240601))
	for game := 0; game < 8; game++ {
		pos := NewInitialPosition()
		for ply := 0; ply < 120; ply++ {
			side := pos.SideToMove
			legal := pos.LegalMoves()

			if pos.Phase == PhaseIdle {
				mate := pos.Board.IsCheckmate(side)
				want := pos.Board.InCheck(side) && len(legal) == 0
				if mate != want {
					t.Fatalf("game %d ply %d: IsCheckmate=%v want %v", game, ply, mate, want)
				}
			}
			if len(legal) == 0 {
				break
			}

			for _, m := range legal {
				next := pos.Board.Apply(m)
				if next.InCheck(side) {
					t.Fatalf("game %d ply %d: %+v leaves own king in check", game, ply, m)
				}
				if pos.Phase == PhaseIdle && next.KingsFacing() {
					t.Fatalf("game %d ply %d: %+v leaves kings facing", game, ply, m)
				}
				checkPieceDelta(t, &pos.Board, &next, m)
			}

			m := legal[rng.Intn(len(legal))]
			next, err := pos.Play(m)
			if err != nil {
				t.Fatalf("game %d ply %d: %v", game, ply, err)
			}
			pos = next
		}
	}
}

func checkPieceDelta(t *testing.T, before, after *Board, m Move) {
	t.Helper()
	r0, b0 := before.PieceCount()
	r1, b1 := after.PieceCount()
	delta := (r0 + b0) - (r1 + b1)

	mover := before.Squares[m.From]
	target := before.Squares[m.To]
	switch {
	case target.IsEmpty():
		if delta != 0 {
			t.Fatalf("quiet move %+v changed piece count by %d", m, delta)
		}
	case target.Side != mover.Side:
		if delta != 1 {
			t.Fatalf("capture %+v changed piece count by %d", m, delta)
		}
	default:
		if delta != 1 {
			t.Fatalf("fusion %+v changed piece count by %d", m, delta)
		}
		if after.Squares[m.To] == mover {
			t.Fatalf("fusion %+v did not change the mover", m)
		}
	}
}
