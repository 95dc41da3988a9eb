package game

import (
	"fmt"
	"sync"
	"time"

	"aimax/internal/aimax"
	"aimax/internal/engine"
	"aimax/internal/store"
)

// Session 一局棋。所有方法都加锁，引擎也只在锁内使用
type Session struct {
	mu sync.Mutex

	ID      string
	Mode    Mode
	Created time.Time
	Updated time.Time

	pos    *aimax.Position
	moves  []aimax.Move
	seen   map[uint64]int // 局面 hash 出现次数
	engine *engine.Engine
	save   func(*store.GameRecord) error
}

func newSession(id string, mode Mode, cfg engine.SearchConfig, now time.Time) *Session {
	s := &Session{
		ID:      id,
		Mode:    mode,
		Created: now,
		Updated: now,
		pos:     aimax.NewInitialPosition(),
		seen:    make(map[uint64]int),
		engine:  engine.NewEngine(cfg),
	}
	s.seen[s.pos.Hash]++
	return s
}

// State 当前快照
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() State {
	pos := s.pos
	st := pos.Status()
	out := State{
		ID:         s.ID,
		Mode:       s.Mode,
		FEN:        pos.Encode(),
		SideToMove: pos.SideToMove.String(),
		Phase:      pos.Phase.String(),
		LegalMoves: MovesToDTO(pos.LegalMoves()),
		Status:     statusString(st),
		InCheck:    st.InCheck,
		AITurn:     s.Mode.aiPlays(pos.SideToMove),
		History:    MovesToDTO(s.moves),
		Repetition: s.seen[pos.Hash],
	}
	if pos.Phase == aimax.PhaseContinuation {
		c := CoordOf(pos.Pending)
		out.Pending = &c
	}
	if w := pos.Winner(); w != aimax.NoSide {
		out.Winner = w.String()
	}
	return out
}

func (s *Session) overLocked() bool {
	st := s.pos.Status()
	return st.Checkmate || st.Stalemate
}

// Play 人类走一步（包括轀的第二步）。引擎执的一方不能由人走
func (s *Session) Play(m aimax.Move) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.overLocked() {
		return State{}, fmt.Errorf("%w: %s", ErrGameOver, s.ID)
	}
	if s.Mode.aiPlays(s.pos.SideToMove) {
		return State{}, fmt.Errorf("%w: %s is played by the engine in %s", ErrNotYourTurn, s.pos.SideToMove, s.Mode)
	}
	if err := s.playLocked(m); err != nil {
		return State{}, err
	}
	if err := s.persistLocked(); err != nil {
		return State{}, err
	}
	return s.stateLocked(), nil
}

func (s *Session) playLocked(m aimax.Move) error {
	if s.overLocked() {
		return fmt.Errorf("%w: %s", ErrGameOver, s.ID)
	}
	next, err := s.pos.Play(m)
	if err != nil {
		return err
	}
	s.commitLocked(next, m)
	return nil
}

func (s *Session) commitLocked(next *aimax.Position, m aimax.Move) {
	s.pos = next
	s.moves = append(s.moves, aimax.Move{From: m.From, To: m.To})
	s.seen[next.Hash]++
	s.Updated = time.Now()
}

// AIResult 引擎这一手的结果；轀连走时 Moves 有两步
type AIResult struct {
	Moves  []aimax.Move
	Search engine.SearchResult
}

// AIMove 引擎替当前执棋方走一手。轀走完第一步后，第二步也由引擎决定。
// 人机模式下不会替人走；联机模式可以当提示用
func (s *Session) AIMove() (State, AIResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.overLocked() {
		return State{}, AIResult{}, fmt.Errorf("%w: %s", ErrGameOver, s.ID)
	}
	if s.Mode == ModePlayerVsAI && !s.Mode.aiPlays(s.pos.SideToMove) {
		return State{}, AIResult{}, fmt.Errorf("%w: %s is the human side", ErrNotYourTurn, s.pos.SideToMove)
	}
	return s.aiMoveLocked()
}

// Reply 人机模式下人走完后轮到引擎就接着走；判断和走子在同一把锁里。
// 不该引擎走时 ok 为 false
func (s *Session) Reply() (st State, res AIResult, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Mode != ModePlayerVsAI || !s.Mode.aiPlays(s.pos.SideToMove) || s.overLocked() {
		return State{}, AIResult{}, false, nil
	}
	st, res, err = s.aiMoveLocked()
	return st, res, err == nil, err
}

func (s *Session) aiMoveLocked() (State, AIResult, error) {
	var res AIResult
	if s.pos.Phase == aimax.PhaseIdle {
		sr := s.engine.Search(&s.pos.Board, s.pos.SideToMove, s.moves)
		res.Search = sr
		if !sr.Found {
			return State{}, res, fmt.Errorf("%w: %s has no legal move", ErrGameOver, s.pos.SideToMove)
		}
		if err := s.playLocked(sr.BestMove); err != nil {
			return State{}, res, err
		}
		res.Moves = append(res.Moves, sr.BestMove)
	}

	if s.pos.Phase == aimax.PhaseContinuation {
		m, ok := s.engine.ChooseContinuation(&s.pos.Board, s.pos.Pending, s.pos.SideToMove)
		if !ok {
			return State{}, res, fmt.Errorf("%w: no continuation from %d", aimax.ErrIllegalMove, s.pos.Pending)
		}
		if err := s.playLocked(m); err != nil {
			return State{}, res, err
		}
		res.Moves = append(res.Moves, m)
	}

	if err := s.persistLocked(); err != nil {
		return State{}, res, err
	}
	return s.stateLocked(), res, nil
}

func (s *Session) record() *store.GameRecord {
	moves := make([]aimax.Move, len(s.moves))
	copy(moves, s.moves)
	return &store.GameRecord{
		ID:      s.ID,
		Mode:    string(s.Mode),
		Moves:   moves,
		Created: s.Created,
		Updated: s.Updated,
	}
}

func (s *Session) persistLocked() error {
	if s.save == nil {
		return nil
	}
	if err := s.save(s.record()); err != nil {
		return fmt.Errorf("save game %s: %w", s.ID, err)
	}
	return nil
}

// Restart 回到开局重新下，清掉历史和引擎的启发表
func (s *Session) Restart() (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = aimax.NewInitialPosition()
	s.moves = nil
	s.seen = map[uint64]int{s.pos.Hash: 1}
	s.engine.Reset()
	s.Updated = time.Now()
	if err := s.persistLocked(); err != nil {
		return State{}, err
	}
	return s.stateLocked(), nil
}

// replay 从开局重放着法，用于从存储恢复
func (s *Session) replay(moves []aimax.Move) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range moves {
		next, err := s.pos.Play(m)
		if err != nil {
			return fmt.Errorf("replay %s move %d: %w", s.ID, i, err)
		}
		s.commitLocked(next, m)
	}
	return nil
}
