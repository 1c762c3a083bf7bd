// Package templatestore persists the single user-edited ticket template.
// Absence is a meaningful state: callers fall back to the built-in default
// template when no override has been saved.
package templatestore

import "sync"

// Store holds one named template string.
type Store interface {
	// Load returns the stored template and whether one exists.
	Load() (string, bool, error)
	// Save replaces the stored template.
	Save(value string) error
	// Clear removes the stored template, restoring the default.
	Clear() error
}

// Memory is an in-process Store, used by tests and ephemeral runs.
type Memory struct {
	mu    sync.RWMutex
	value string
	set   bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load() (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.value, m.set, nil
}

func (m *Memory) Save(value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = value
	m.set = true
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = ""
	m.set = false
	return nil
}
