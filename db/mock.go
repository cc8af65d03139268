package db

import (
	"sync"
	"sync/atomic"
)

// Compile-time interface check.
var _ Store = (*MockStore)(nil)

// MockStore is a fully functional, thread-safe, in-memory implementation
// of [Store]. It requires no external dependencies — ideal for unit and
// integration tests.
//
//	store := db.NewMockStore()
//	defer store.Close()
type MockStore struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed atomic.Bool
}

// NewMockStore creates an empty MockStore.
func NewMockStore() *MockStore {
	return &MockStore{data: make(map[string][]byte)}
}

// ---------------------------------------------------------------------------
// Store implementation
// ---------------------------------------------------------------------------

func (m *MockStore) Get(table string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed.Load() {
		return nil, ErrClosed
	}
	if table == "" {
		return nil, ErrEmptyTable
	}

	v, ok := m.data[table]
	if !ok {
		return nil, ErrKeyNotFound
	}

	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MockStore) Put(table string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed.Load() {
		return ErrClosed
	}
	if table == "" {
		return ErrEmptyTable
	}

	v := make([]byte, len(value))
	copy(v, value)
	m.data[table] = v
	return nil
}

func (m *MockStore) Delete(table string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed.Load() {
		return ErrClosed
	}
	if table == "" {
		return ErrEmptyTable
	}

	delete(m.data, table)
	return nil
}

func (m *MockStore) Has(table string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed.Load() {
		return false, ErrClosed
	}
	if table == "" {
		return false, ErrEmptyTable
	}

	_, exists := m.data[table]
	return exists, nil
}

func (m *MockStore) Flush() error {
	if m.closed.Load() {
		return ErrClosed
	}
	return nil // in-memory — nothing to flush
}

func (m *MockStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed.Load() {
		return ErrClosed
	}
	m.closed.Store(true)
	m.data = nil
	return nil
}

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

// Len returns the number of stored tables. Returns -1 if the store is
// closed.
func (m *MockStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed.Load() {
		return -1
	}
	return len(m.data)
}

// Reset clears all data without closing the store.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed.Load() {
		return
	}
	m.data = make(map[string][]byte)
}
