package kvstore

import (
	"context"
	"sync"
)

// Memory is an in-process Store backed by a plain map, guarded by a single
// RWMutex. It is the reference implementation the other backends are tested
// against for parity, and is the right choice for tests and short-lived
// processes that don't need durability.
type Memory struct {
	mu     sync.RWMutex
	values map[Key][]byte
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[Key][]byte)}
}

// Get implements Store.
func (m *Memory) Get(_ context.Context, key Key) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// GetMany implements Store.
func (m *Memory) GetMany(_ context.Context, keys []Key) ([][]byte, []bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	values := make([][]byte, len(keys))
	ok := make([]bool, len(keys))
	for i, key := range keys {
		v, found := m.values[key]
		ok[i] = found
		if found {
			out := make([]byte, len(v))
			copy(out, v)
			values[i] = out
		}
	}
	return values, ok, nil
}

// Set implements Store.
func (m *Memory) Set(_ context.Context, key Key, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.values[key] = v
	return nil
}

// SetMany implements Store. The whole batch is written under a single write
// lock, so a concurrent reader never observes a partial commit.
func (m *Memory) SetMany(_ context.Context, entries map[Key][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, value := range entries {
		v := make([]byte, len(value))
		copy(v, value)
		m.values[key] = v
	}
	return nil
}
