// Package memstore keeps written tables in memory. Used by tests.
package memstore

import (
	"context"
	"sync"

	"github.com/cognicore/wordfreq/pkg/wordfreq/freq"
	"github.com/cognicore/wordfreq/pkg/wordfreq/store"
)

// Store is an in-memory implementation of store.Store
type Store struct {
	mu     sync.RWMutex
	runs   []store.Run
	tables map[string]map[string]uint64
	closed bool
}

// New creates an empty store.
func New() *Store {
	return &Store{tables: make(map[string]map[string]uint64)}
}

// WriteTable implements store.Store.
func (s *Store) WriteTable(ctx context.Context, run store.Run, entries []freq.Entry) error {
	counts := make(map[string]uint64, len(entries))
	for _, e := range entries {
		counts[e.Word] = e.Count
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, run)
	s.tables[run.ID] = counts
	return nil
}

// Close implements store.Store.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Runs returns the runs written so far, oldest first.
func (s *Store) Runs() []store.Run {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]store.Run, len(s.runs))
	copy(out, s.runs)
	return out
}

// Counts returns a copy of the table written for runID.
func (s *Store) Counts(runID string) map[string]uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]uint64, len(s.tables[runID]))
	for w, c := range s.tables[runID] {
		out[w] = c
	}
	return out
}

// Closed reports whether Close was called.
func (s *Store) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}
