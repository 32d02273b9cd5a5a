package shoppinglist

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryRepository is an in-process Repository for tests and local runs
// without redis. It round-trips through JSON so it exercises the same
// serialization path as the redis-backed repository.
type MemoryRepository struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (m *MemoryRepository) LoadAll(_ context.Context) ([]List, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.data) == 0 {
		return []List{}, nil
	}
	var lists []List
	if err := json.Unmarshal(m.data, &lists); err != nil {
		return []List{}, nil
	}
	if lists == nil {
		lists = []List{}
	}
	return lists, nil
}

func (m *MemoryRepository) SaveAll(_ context.Context, lists []List) error {
	payload, err := json.Marshal(lists)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = payload
	return nil
}
