package kv

import (
	"context"
	"sync"

	"storefront/internal/domain"
)

type memoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an in-process Storage used in tests and as a
// fallback when no Redis address is configured.
func NewMemory() Storage {
	return &memoryStorage{data: make(map[string][]byte)}
}

func (s *memoryStorage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *memoryStorage) Set(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	s.mu.Lock()
	s.data[key] = stored
	s.mu.Unlock()
	return nil
}

func (s *memoryStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}
