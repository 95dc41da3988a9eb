package aimax

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const initialFEN = "RHEAKAEHR/9/1C5C1/P1P1P1P1P/9/9/p1p1p1p1p/1c5c1/9/rheakaehr w"

func TestEncodeInitial(t *testing.T) {
	if got := NewInitialPosition().Encode(); got != initialFEN {
		t.Fatalf("Encode() = %q want %q", got, initialFEN)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	fens := []string{
		initialFEN,
		"3K5/4R4/9/9/9/9/9/7W1/R8/5k3 w",
		"3K5/9/9/9/9/W8/9/9/9/5k3 w 45",
		"4K4/9/9/9/4S4/2U1T1M2/9/G1Q1J4/9/5k3 b",
	}
	for _, fen := range fens {
		pos, err := DecodePosition(fen)
		if err != nil {
			t.Fatalf("decode %q: %v", fen, err)
		}
		if diff := cmp.Diff(fen, pos.Encode()); diff != "" {
			t.Fatalf("round trip (-want +got):\n%s", diff)
		}
	}
}

func TestDecodePendingSquare(t *testing.T) {
	pos, err := DecodePosition("3K5/9/9/9/9/W8/9/9/9/5k3 w 45")
	if err != nil {
		t.Fatal(err)
	}
	if pos.Phase != PhaseContinuation || pos.Pending != Sq(5, 0) {
		t.Fatalf("phase=%v pending=%d", pos.Phase, pos.Pending)
	}
	if n := len(pos.LegalMoves()); n != 4 {
		t.Fatalf("legal moves in continuation = %d", n)
	}
}

func TestDecodeInvalid(t *testing.T) {
	bad := []string{
		"",
		"RHEAKAEHR/9/9 w",
		"RHEAKAEHX/9/1C5C1/P1P1P1P1P/9/9/p1p1p1p1p/1c5c1/9/rheakaehr w",
		"RHEAKAEHR/9/1C5C1/P1P1P1P1P/9/9/p1p1p1p1p/1c5c1/9/rheakaehr x",
		"RHEAKAEHR/9/1C5C1/P1P1P1P1P/9/9/p1p1p1p1p/1c5c1/9/rheakaehr w 40",
		"RHEAKAEHR/9/1C5C1/P1P1P1P1P/9/9/p1p1p1p1p/1c5c1/9/rheakaehr w 99",
		"RHEAKAEHRR/9/1C5C1/P1P1P1P1P/9/9/p1p1p1p1p/1c5c1/9/rheakaehr w",
		// 轀在底线且被己方兵挡住，没有第二步
		"3K5/9/9/9/9/9/9/9/9/WP3k3 w 81",
	}
	for _, fen := range bad {
		if _, err := DecodePosition(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Fatalf("DecodePosition(%q) err=%v, want ErrInvalidFEN", fen, err)
		}
	}
}
