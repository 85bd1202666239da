package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"fintrack/internal/core"
)

// Store is the default session-scoped backend: an insertion-ordered slice
// guarded by a mutex. Append is the only mutator; nothing is ever removed
// before the process exits.
type Store struct {
	mu    sync.Mutex
	items []core.Transaction
}

func New() *Store {
	return &Store{}
}

// Append validates the draft, assigns a fresh ID and stores the record.
// The store is left untouched when validation fails.
func (s *Store) Append(_ context.Context, draft core.Transaction) (core.Transaction, error) {
	if err := draft.Validate(); err != nil {
		return core.Transaction{}, err
	}
	draft.ID = uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, draft)
	return draft, nil
}

// List returns a copy of the current sequence in insertion order.
func (s *Store) List(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.items))
	copy(out, s.items)
	return out, nil
}

// ListMonth returns the transactions dated within the given month, in
// insertion order.
func (s *Store) ListMonth(_ context.Context, year, month int) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.Transaction
	for _, t := range s.items {
		if t.Date.Year() == year && t.Date.Month() == month {
			out = append(out, t)
		}
	}
	return out, nil
}

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
