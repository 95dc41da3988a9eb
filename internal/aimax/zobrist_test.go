package aimax

import (
	"testing"
)

func TestHashInitializedFromInitialAndFEN(t *testing.T) {
	pos := NewInitialPosition()
	if pos.Hash != pos.CalculateHash() {
		t.Fatalf("initial hash mismatch: got=%d want=%d", pos.Hash, pos.CalculateHash())
	}

	decoded, err := DecodePosition(pos.Encode())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Hash != pos.Hash {
		t.Fatalf("decoded hash mismatch: got=%d want=%d", decoded.Hash, pos.Hash)
	}
}

func TestPlayHashIncrementalMatchesFullRecompute(t *testing.T) {
	pos := NewInitialPosition()
	for ply := 0; ply < 40; ply++ {
		moves := pos.LegalMoves()
		if len(moves) == 0 {
			return
		}
		mv := moves[len(moves)/2]
		next, err := pos.Play(mv)
		if err != nil {
			t.Fatalf("play failed at ply %d: %+v: %v", ply, mv, err)
		}
		got := next.Hash
		want := next.CalculateHash()
		if got != want {
			t.Fatalf("hash mismatch at ply %d: got=%d want=%d move=%+v", ply, got, want, mv)
		}
		pos = next
	}
}

func TestHashDistinguishesPendingPhase(t *testing.T) {
	pos := newTestPosition(t, Red,
		"...K.....",
		emptyRow, emptyRow, emptyRow,
		"W........",
		emptyRow, emptyRow, emptyRow, emptyRow,
		".....k...",
	)
	mid := mustPlay(t, pos, Sq(4, 0), Sq(5, 0))

	idle := *mid
	idle.Phase = PhaseIdle
	idle.Pending = NoSquare
	if idle.CalculateHash() == mid.Hash {
		t.Fatalf("pending square must change the hash")
	}
}
