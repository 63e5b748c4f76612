package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/quasilyte/gdata"
)

// AppName is the gdata application folder shared with the settings store.
const AppName = "override"

const progressKey = "progress"

// KV is the slice of gdata.Manager the JSON store needs.
type KV interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// KVStore keeps Progress as a single JSON item.
type KVStore struct {
	mu  sync.Mutex
	kv  KV
	now func() time.Time
}

// NewKVStore wraps any KV, typically a gdata.Manager.
func NewKVStore(kv KV) *KVStore {
	return &KVStore{kv: kv, now: time.Now}
}

// OpenGData opens the per-user gdata folder for the game.
func OpenGData() (*KVStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return nil, fmt.Errorf("open gdata: %w", err)
	}
	return NewKVStore(m), nil
}

func (s *KVStore) Load(ctx context.Context) (*Progress, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *KVStore) load() (*Progress, error) {
	data, err := s.kv.LoadItem(progressKey)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	p := New()
	if data == nil {
		return p, nil
	}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse progress: %w", err)
	}
	if p.Levels == nil {
		p.Levels = map[int]*LevelRecord{}
	}
	return p, nil
}

func (s *KVStore) RecordResult(ctx context.Context, r Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.load()
	if err != nil {
		return err
	}
	p.Apply(r, s.now())
	return s.save(p)
}

func (s *KVStore) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(New())
}

func (s *KVStore) Close() error { return nil }

func (s *KVStore) save(p *Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := s.kv.SaveItem(progressKey, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
