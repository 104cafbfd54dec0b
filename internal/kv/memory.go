// Package kv provides the key-value persistence adapter the CMS
// document lives in.
package kv

import "sync"

// MemoryStore is a map-backed Store for tests. It supports injecting
// a write error so callers can exercise the storage-failure path
// (the disk-full case the production adapter can hit).
type MemoryStore struct {
	mu       sync.Mutex
	data     map[string]string
	writeErr error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Get returns the stored value for key.
func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	return value, ok, nil
}

// Set stores value under key, or fails with the injected error.
func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.data[key] = value
	return nil
}

// Remove deletes key. Deleting an absent key is a no-op.
func (m *MemoryStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}

// InjectWriteError makes every subsequent Set fail with err. Pass nil
// to restore normal writes.
func (m *MemoryStore) InjectWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

// Len reports the number of stored keys.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
