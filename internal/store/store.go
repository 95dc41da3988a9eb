package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"aimax/internal/aimax"
)

const gamePrefix = "game/"

var ErrNotFound = errors.New("store: game not found")

// GameRecord 一局棋落盘的内容：只存着法，恢复时从开局重放
type GameRecord struct {
	ID      string       `json:"id"`
	Mode    string       `json:"mode"`
	Moves   []aimax.Move `json:"moves"`
	Created time.Time    `json:"created"`
	Updated time.Time    `json:"updated"`
}

// Store 用 BadgerDB 保存对局
type Store struct {
	db *badger.DB
}

// Open dir 为空时使用内存模式
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger %q: %w", dir, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gameKey(id string) []byte { return []byte(gamePrefix + id) }

// Save 覆盖写入
func (s *Store) Save(rec *GameRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(rec.ID), data)
	})
}

func (s *Store) Load(id string) (*GameRecord, error) {
	rec := &GameRecord{}
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Store) Delete(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(gameKey(id))
	})
}

// List 按 key 顺序返回所有对局
func (s *Store) List() ([]*GameRecord, error) {
	var out []*GameRecord
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(gamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			rec := &GameRecord{}
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, rec)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", strings.TrimPrefix(string(item.Key()), gamePrefix), err)
			}
			out = append(out, rec)
		}
		return nil
	})
	return out, err
}
