package store

import (
	"context"
	"sync"
)

// Memory keeps state in process
type Memory struct {
	lock sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an empty in-memory store
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Save implements Store
func (m *Memory) Save(_ context.Context, id string, data []byte) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.data[id] = append([]byte(nil), data...)
	return nil
}

// Load implements Store
func (m *Memory) Load(_ context.Context, id string) ([]byte, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	data, ok := m.data[id]
	if !ok {
		return nil, ErrNotFound
	}

	return append([]byte(nil), data...), nil
}

// Delete implements Store
func (m *Memory) Delete(_ context.Context, id string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	delete(m.data, id)
	return nil
}
