package store

import (
	"context"
	"sync"
)

// MemorySnapshotStore keeps the cart snapshot in memory. Used in tests and
// when running without any durable storage.
type MemorySnapshotStore struct {
	mu      sync.RWMutex
	entries []SnapshotEntry
}

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{}
}

func (s *MemorySnapshotStore) Load(ctx context.Context) ([]SnapshotEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.entries == nil {
		return nil, nil
	}
	out := make([]SnapshotEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

func (s *MemorySnapshotStore) Save(ctx context.Context, entries []SnapshotEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make([]SnapshotEntry, len(entries))
	copy(s.entries, entries)
	return nil
}
