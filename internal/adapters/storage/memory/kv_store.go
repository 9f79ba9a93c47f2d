package memory

import (
	"context"
	"sync"

	"petpal/internal/ports/kv"
)

type kvStore struct {
	mu    sync.RWMutex
	byKey map[string]string
}

func NewStore() kv.Store {
	return &kvStore{
		byKey: make(map[string]string),
	}
}

func (s *kvStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byKey[key]
	return v, ok, nil
}

func (s *kvStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byKey[key] = value
	return nil
}

func (s *kvStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byKey, key)
	return nil
}
