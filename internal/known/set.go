// Package known manages the set of words the user has already mastered.
package known

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrMalformedState is reported by a Store whose persisted words cannot be
// decoded. Load treats it as an empty set.
var ErrMalformedState = errors.New("malformed known-word state")

// Store persists the known-word set.
type Store interface {
	// LoadKnownWords returns found=false when nothing was ever saved.
	LoadKnownWords(ctx context.Context) (words []string, found bool, err error)
	SaveKnownWords(ctx context.Context, words []string) error
}

// Set is the ordered, duplicate-free set of known words. Words are kept in
// upper case and every change is written through to the Store.
type Set struct {
	store   Store
	logger  *slog.Logger
	words   []string
	members map[string]struct{}
}

// Load restores the set from store. A store that has never been written is
// seeded from defaults and saved right away.
func Load(ctx context.Context, store Store, defaults []string, logger *slog.Logger) (*Set, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Set{store: store, logger: logger, members: map[string]struct{}{}}

	words, found, err := store.LoadKnownWords(ctx)
	switch {
	case errors.Is(err, ErrMalformedState):
		logger.Warn("known words are malformed; starting empty", "error", err)
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("failed to load known words: %w", err)
	case !found:
		for _, word := range defaults {
			s.insert(Normalize(word))
		}
		if err := s.persist(ctx); err != nil {
			logger.Warn("failed to save seeded known words", "error", err)
		}
		logger.Info("seeded known words", "count", len(s.words))
		return s, nil
	}
	for _, word := range words {
		s.insert(word)
	}
	return s, nil
}

// Normalize returns the canonical form of a word.
func Normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// Contains reports whether word is known.
func (s *Set) Contains(word string) bool {
	_, ok := s.members[Normalize(word)]
	return ok
}

// Len returns the number of known words.
func (s *Set) Len() int {
	return len(s.words)
}

// Words returns a copy of the known words in insertion order.
func (s *Set) Words() []string {
	return append([]string(nil), s.words...)
}

// Add marks word as known. It reports whether the set changed.
func (s *Set) Add(ctx context.Context, word string) (bool, error) {
	if !s.insert(Normalize(word)) {
		return false, nil
	}
	return true, s.persist(ctx)
}

// Remove forgets word. It reports whether the set changed.
func (s *Set) Remove(ctx context.Context, word string) (bool, error) {
	word = Normalize(word)
	if _, ok := s.members[word]; !ok {
		return false, nil
	}
	delete(s.members, word)
	for i, w := range s.words {
		if w == word {
			s.words = append(s.words[:i], s.words[i+1:]...)
			break
		}
	}
	return true, s.persist(ctx)
}

// Merge unions words into the set and returns how many were new.
func (s *Set) Merge(ctx context.Context, words []string) (int, error) {
	added := 0
	for _, word := range words {
		if s.insert(Normalize(word)) {
			added++
		}
	}
	if added == 0 {
		return 0, nil
	}
	return added, s.persist(ctx)
}

// Clear empties the set.
func (s *Set) Clear(ctx context.Context) error {
	s.words = nil
	s.members = map[string]struct{}{}
	return s.persist(ctx)
}

func (s *Set) insert(word string) bool {
	if word == "" {
		return false
	}
	if _, ok := s.members[word]; ok {
		return false
	}
	s.members[word] = struct{}{}
	s.words = append(s.words, word)
	return true
}

func (s *Set) persist(ctx context.Context) error {
	if err := s.store.SaveKnownWords(ctx, s.Words()); err != nil {
		return fmt.Errorf("failed to save known words: %w", err)
	}
	return nil
}
