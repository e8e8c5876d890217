package settings

import (
	"context"
	"sync"
)

// MemoryStore keeps slots in process memory. Used for previews and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	values     map[string][]byte
	failWrites error
	writes     int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWrites != nil {
		return s.failWrites
	}
	s.values[key] = append([]byte{}, value...)
	s.writes++
	return nil
}

// Writes returns how many successful Set calls were made.
func (s *MemoryStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// FailWrites makes every following Set fail with err. A nil err restores writes.
func (s *MemoryStore) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWrites = err
}

// Put stores raw bytes without counting a write, e.g. to plant a corrupt slot.
func (s *MemoryStore) Put(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}
