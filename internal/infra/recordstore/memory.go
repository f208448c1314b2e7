package recordstore

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps records for the life of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, ok := s.records[name]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return slices.Clone(payload), nil
}

func (s *MemoryStore) Put(ctx context.Context, name string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[name] = slices.Clone(payload)
	return nil
}

func (s *MemoryStore) Close(context.Context) error { return nil }
