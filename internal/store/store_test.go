package store

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"aimax/internal/aimax"
)

func openMem(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoad(t *testing.T) {
	s := openMem(t)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	rec := &GameRecord{
		ID:   "g1",
		Mode: "ai_vs_ai",
		Moves: []aimax.Move{
			{From: aimax.Sq(3, 4), To: aimax.Sq(4, 4)},
			{From: aimax.Sq(6, 4), To: aimax.Sq(5, 4)},
		},
		Created: now,
		Updated: now.Add(time.Minute),
	}
	if err := s.Save(rec); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load("g1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(rec, got); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissing(t *testing.T) {
	s := openMem(t)
	if _, err := s.Load("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListAndDelete(t *testing.T) {
	s := openMem(t)
	for _, id := range []string{"b", "a", "c"} {
		if err := s.Save(&GameRecord{ID: id, Mode: "online"}); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}
	if err := s.Delete("b"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	recs, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var ids []string
	for _, r := range recs {
		ids = append(ids, r.ID)
	}
	if diff := cmp.Diff([]string{"a", "c"}, ids); diff != "" {
		t.Fatalf("ids (-want +got):\n%s", diff)
	}
}
