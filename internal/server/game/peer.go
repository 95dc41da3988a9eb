package game

import (
	"fmt"
	"strings"

	"aimax/internal/aimax"
)

// PeerMove 联机对手发来的一步。Board/WenContinue 是对方走完后的快照，可选
type PeerMove struct {
	From        Coord  `json:"from"`
	To          Coord  `json:"to"`
	Board       string `json:"board,omitempty"`
	WenContinue *bool  `json:"wenContinue,omitempty"`
}

func (pm PeerMove) Move() aimax.Move {
	return aimax.Move{From: pm.From.Square(), To: pm.To.Square()}
}

// ApplyPeer 重放对手的一步并与快照比对，不一致时什么都不改
func (s *Session) ApplyPeer(pm PeerMove) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Mode != ModeOnline {
		return State{}, fmt.Errorf("%w: peer moves need an online game, got %s", ErrNotYourTurn, s.Mode)
	}
	if s.overLocked() {
		return State{}, fmt.Errorf("%w: %s", ErrGameOver, s.ID)
	}
	m := pm.Move()
	next, err := s.pos.Play(m)
	if err != nil {
		return State{}, err
	}
	if err := checkSnapshot(next, pm); err != nil {
		return State{}, err
	}
	s.commitLocked(next, m)
	if err := s.persistLocked(); err != nil {
		return State{}, err
	}
	return s.stateLocked(), nil
}

func checkSnapshot(next *aimax.Position, pm PeerMove) error {
	// 允许带走子方等字段的完整 FEN，只比棋盘部分
	if fields := strings.Fields(pm.Board); len(fields) > 0 {
		want := fields[0]
		if got := aimax.EncodeBoard(&next.Board); got != want {
			return fmt.Errorf("%w: board %s, peer says %s", ErrSnapshotMismatch, got, want)
		}
	}
	if pm.WenContinue != nil {
		cont := next.Phase == aimax.PhaseContinuation
		if cont != *pm.WenContinue {
			return fmt.Errorf("%w: wen continuation %v, peer says %v", ErrSnapshotMismatch, cont, *pm.WenContinue)
		}
	}
	return nil
}
