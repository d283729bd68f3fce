package known

import (
	"context"
	"sync"
)

// MemoryStore keeps the known words in memory.
type MemoryStore struct {
	mu    sync.Mutex
	words []string
	found bool
	saves int
	err   error
}

// NewMemoryStore returns a store that reports words as previously saved.
// Pass nil for a store that was never written.
func NewMemoryStore(words []string) *MemoryStore {
	return &MemoryStore{words: append([]string(nil), words...), found: words != nil}
}

// LoadKnownWords implements Store.
func (m *MemoryStore) LoadKnownWords(_ context.Context) ([]string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, false, m.err
	}
	return append([]string(nil), m.words...), m.found, nil
}

// SaveKnownWords implements Store.
func (m *MemoryStore) SaveKnownWords(_ context.Context, words []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.words = append([]string(nil), words...)
	m.found = true
	m.saves++
	return nil
}

// Saved returns the last saved words and the number of saves.
func (m *MemoryStore) Saved() ([]string, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.words...), m.saves
}

// FailWith makes every later call return err.
func (m *MemoryStore) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}
