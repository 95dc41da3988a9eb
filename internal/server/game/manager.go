package game

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"aimax/internal/aimax"
	"aimax/internal/engine"
	"aimax/internal/store"
)

var (
	ErrNotFound         = errors.New("game not found")
	ErrGameOver         = errors.New("game is over")
	ErrSnapshotMismatch = errors.New("peer snapshot mismatch")
	ErrInvalidMode      = errors.New("invalid game mode")
	ErrNotYourTurn      = errors.New("move not allowed for this side")
)

type Mode string

const (
	ModeOnline     Mode = "online"
	ModeAIvsAI     Mode = "ai_vs_ai"
	ModePlayerVsAI Mode = "player_vs_ai" // 人执红，AI 执黑
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeOnline, ModeAIvsAI, ModePlayerVsAI:
		return m, nil
	case "":
		return ModePlayerVsAI, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

func (m Mode) aiPlays(side aimax.Side) bool {
	switch m {
	case ModeAIvsAI:
		return true
	case ModePlayerVsAI:
		return side == aimax.Black
	}
	return false
}

// Store 会话落盘接口，*store.Store 实现它
type Store interface {
	Save(rec *store.GameRecord) error
	List() ([]*store.GameRecord, error)
	Delete(id string) error
}

type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	store    Store
	cfg      engine.SearchConfig
}

// NewManager st 可以为 nil，此时只在内存里
func NewManager(st Store, cfg engine.SearchConfig) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		store:    st,
		cfg:      cfg,
	}
}

func (m *Manager) newSession(id string, mode Mode, now time.Time) *Session {
	s := newSession(id, mode, m.cfg, now)
	if m.store != nil {
		s.save = m.store.Save
	}
	return s
}

func (m *Manager) Create(mode Mode) (*Session, error) {
	s := m.newSession(uuid.NewString(), mode, time.Now())

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	s.mu.Lock()
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s, nil
}

func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if m.store != nil {
		return m.store.Delete(id)
	}
	return nil
}

// Restore 从存储里把所有对局重放回内存，重放失败的对局跳过并记日志
func (m *Manager) Restore() (int, error) {
	if m.store == nil {
		return 0, nil
	}
	recs, err := m.store.List()
	if err != nil {
		return 0, fmt.Errorf("list games: %w", err)
	}
	n := 0
	for _, rec := range recs {
		mode, err := ParseMode(rec.Mode)
		if err != nil {
			log.Printf("skip game %s: %v", rec.ID, err)
			continue
		}
		s := m.newSession(rec.ID, mode, rec.Created)
		if err := s.replay(rec.Moves); err != nil {
			log.Printf("skip game %s: %v", rec.ID, err)
			continue
		}
		s.Updated = rec.Updated

		m.mu.Lock()
		m.sessions[s.ID] = s
		m.mu.Unlock()
		n++
	}
	return n, nil
}
