// internal/store/memory.go
//
// In-memory implementation of secret.CounterStore.
// Used in tests and when COUNTER_BACKEND=memory; the counter is lost when
// the process restarts, so every session seeds from the same value.
//
// Characteristics:
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Optional injected failures for exercising degraded-persistence paths.

package store

import (
	"context"
	"sync"
)

// Memory holds the counter in process memory.
type Memory struct {
	mu       sync.RWMutex // guards value
	value    uint32
	writes   int
	ReadErr  error // returned by ReadCounter when set
	WriteErr error // returned by WriteCounter when set
}

// NewMemory constructs a store pre-loaded with v.
func NewMemory(v uint32) *Memory {
	return &Memory{value: v}
}

// ReadCounter returns the stored value.
func (m *Memory) ReadCounter(ctx context.Context) (uint32, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ReadErr != nil {
		return 0, m.ReadErr
	}
	return m.value, nil
}

// WriteCounter replaces the stored value.
func (m *Memory) WriteCounter(ctx context.Context, v uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.value = v
	m.writes++
	return nil
}

// Writes reports how many successful writes the store has seen.
func (m *Memory) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}
