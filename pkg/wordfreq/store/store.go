// Package store defines where a finished frequency table is written.
package store

import (
	"context"
	"crypto/rand"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/wordfreq/pkg/wordfreq/freq"
)

// Store persists the final table of a run
type Store interface {
	// WriteTable writes every entry exactly once. Row order is unspecified.
	WriteTable(ctx context.Context, run Run, entries []freq.Entry) error
	Close() error
}

// Run describes the run that produced a table
type Run struct {
	ID         string
	Root       string
	Extension  string
	Files      int
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewRunID returns a fresh, time-ordered run identifier.
func NewRunID() string {
	return ulid.MustNew(ulid.Now(), ulid.Monotonic(rand.Reader, 0)).String()
}

// Pending is a fully prepared write that is not yet visible.
type Pending interface {
	Commit() error
	Abort()
}

// Stager is a Store that can prepare a write and publish it later.
type Stager interface {
	Stage(ctx context.Context, run Run, entries []freq.Entry) (Pending, error)
}

// Multi writes to several stores as one unit. Stagers are prepared first,
// then plain stores are written, and only when all of that succeeded are
// the staged writes committed, in order. Put the sink whose commit is least
// likely to fail last.
type Multi []Store

// WriteTable implements Store.
func (m Multi) WriteTable(ctx context.Context, run Run, entries []freq.Entry) error {
	var pending []Pending
	abort := func(ps []Pending) {
		for _, p := range ps {
			p.Abort()
		}
	}

	for _, s := range m {
		st, ok := s.(Stager)
		if !ok {
			continue
		}
		p, err := st.Stage(ctx, run, entries)
		if err != nil {
			abort(pending)
			return err
		}
		pending = append(pending, p)
	}

	for _, s := range m {
		if _, ok := s.(Stager); ok {
			continue
		}
		if err := s.WriteTable(ctx, run, entries); err != nil {
			abort(pending)
			return err
		}
	}

	for i, p := range pending {
		if err := p.Commit(); err != nil {
			abort(pending[i+1:])
			return err
		}
	}
	return nil
}

// Close closes every store and joins their errors.
func (m Multi) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
