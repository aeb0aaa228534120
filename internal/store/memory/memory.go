// Package memory is an in-memory record store for tests and ephemeral runs.
package memory

import (
	"context"
	"sync"

	"pennywise/internal/core"
	"pennywise/internal/store"
)

type Store struct {
	mu    sync.Mutex
	items []core.Record
}

func New() *Store {
	return &Store{}
}

// Seed pre-populates the store, mainly for tests.
func Seed(records ...core.Record) *Store {
	return &Store{items: records}
}

func (s *Store) Append(_ context.Context, r core.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, r)
	return nil
}

// Load returns a copy of the stored records in insertion order, or
// store.ErrNoData when nothing has been recorded.
func (s *Store) Load(_ context.Context) ([]core.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == 0 {
		return nil, store.ErrNoData
	}
	out := make([]core.Record, len(s.items))
	copy(out, s.items)
	return out, nil
}
