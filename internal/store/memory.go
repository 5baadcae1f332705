package store

import (
	"context"
	"sync"
)

// memoryStore is the in-memory [CollectionStore] used by tests and by
// ephemeral single-process runs. It applies the same version contract as the
// durable backends so policy tests exercise realistic conflict behavior.
type memoryStore struct {
	mu          sync.RWMutex
	collections map[string]Collection
}

// NewMemoryStore returns an empty in-memory collection store.
func NewMemoryStore() CollectionStore {
	return &memoryStore{collections: make(map[string]Collection)}
}

func (m *memoryStore) Get(_ context.Context, key string) (Collection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	col, ok := m.collections[key]
	if !ok {
		return Collection{Version: 0}, nil
	}

	// copy the payload so callers cannot mutate stored bytes
	records := make([]byte, len(col.Records))
	copy(records, col.Records)
	return Collection{Records: records, Version: col.Version}, nil
}

func (m *memoryStore) Put(_ context.Context, key string, col Collection) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.collections[key].Version
	if col.Version != current {
		return ErrVersionConflict
	}

	records := make([]byte, len(col.Records))
	copy(records, col.Records)
	m.collections[key] = Collection{Records: records, Version: current + 1}
	return nil
}

func (m *memoryStore) Close() error {
	return nil
}
