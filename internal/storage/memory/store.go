package memory

import (
	"sync"

	"github.com/sajidmehmood/demo-bank-ledger/internal/interfaces"
)

// MemoryKVStore is an in-memory implementation of interfaces.KVStore.
// Useful for tests and for running the demo without touching disk.
type MemoryKVStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryKVStore creates an empty in-memory store.
func NewMemoryKVStore() *MemoryKVStore {
	return &MemoryKVStore{
		values: make(map[string]string),
	}
}

func (m *MemoryKVStore) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]
	if !ok {
		return "", interfaces.ErrNotFound
	}
	return v, nil
}

func (m *MemoryKVStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *MemoryKVStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

// Compile-time check: ensure MemoryKVStore implements KVStore.
var _ interfaces.KVStore = (*MemoryKVStore)(nil)
