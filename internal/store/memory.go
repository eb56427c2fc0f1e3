package store

import (
	"encoding/json/v2"
	"sync"
)

// MemoryStore is an in-memory BlobStore for tests.
// Blobs round-trip through JSON so encoding behavior matches the real store.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte

	// FailSaves makes every Save return an error, for durability-gap tests.
	FailSaves error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Load implements BlobStore.
func (m *MemoryStore) Load(key string, dest any) (bool, error) {
	m.mu.RLock()
	data, ok := m.blobs[key]
	m.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Save implements BlobStore.
func (m *MemoryStore) Save(key string, value any) error {
	if m.FailSaves != nil {
		return m.FailSaves
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.blobs[key] = data
	m.mu.Unlock()
	return nil
}

// Close implements BlobStore.
func (m *MemoryStore) Close() error { return nil }

// Corrupt overwrites a key with bytes that will not decode, for
// malformed-blob recovery tests.
func (m *MemoryStore) Corrupt(key string) {
	m.mu.Lock()
	m.blobs[key] = []byte("{not json")
	m.mu.Unlock()
}
