// Package csvstore writes the frequency table as CSV rows of word,count.
package csvstore

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofrs/flock"

	"github.com/cognicore/wordfreq/pkg/wordfreq/freq"
	"github.com/cognicore/wordfreq/pkg/wordfreq/internalerr"
	"github.com/cognicore/wordfreq/pkg/wordfreq/store"
)

// ErrLocked is returned when another run is writing the same output.
var ErrLocked = errors.New("output is being written by another run")

// Store writes to a single CSV file. Nothing touches the target path until
// the write commits, at which point a fully written temp file is renamed
// over it. Writers of the same path are serialized through a sibling
// ".lock" file, which is left in place.
type Store struct {
	path   string
	header bool
}

// New creates a CSV store for path. With header set, the first row is
// "word,count".
func New(path string, header bool) *Store {
	return &Store{path: path, header: header}
}

// WriteTable implements store.Store.
func (s *Store) WriteTable(ctx context.Context, run store.Run, entries []freq.Entry) error {
	p, err := s.Stage(ctx, run, entries)
	if err != nil {
		return err
	}
	return p.Commit()
}

// Stage takes the output lock and writes every row to a temp file next to
// the target. The target is replaced on Commit.
func (s *Store) Stage(ctx context.Context, run store.Run, entries []freq.Entry) (store.Pending, error) {
	lock := flock.New(LockPath(s.path))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, internalerr.WithPath(internalerr.ErrOutputWrite, s.path, err)
	}
	if !ok {
		return nil, internalerr.WithPath(internalerr.ErrOutputWrite, s.path, ErrLocked)
	}

	tmpPath, err := s.writeTemp(ctx, entries)
	if err != nil {
		_ = lock.Unlock()
		return nil, internalerr.WithPath(internalerr.ErrOutputWrite, s.path, err)
	}
	return &pending{path: s.path, tmp: tmpPath, lock: lock}, nil
}

func (s *Store) writeTemp(ctx context.Context, entries []freq.Entry) (string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return "", err
	}
	fail := func(err error) (string, error) {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}

	if err := tmp.Chmod(0o644); err != nil {
		return fail(err)
	}
	if err := writeRows(ctx, tmp, entries, s.header); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

type pending struct {
	path string
	tmp  string
	lock *flock.Flock
}

func (p *pending) Commit() error {
	defer p.lock.Unlock()
	if err := os.Rename(p.tmp, p.path); err != nil {
		os.Remove(p.tmp)
		return internalerr.WithPath(internalerr.ErrOutputWrite, p.path, err)
	}
	return nil
}

func (p *pending) Abort() {
	os.Remove(p.tmp)
	_ = p.lock.Unlock()
}

// LockPath is the lock file guarding path.
func LockPath(path string) string {
	return path + ".lock"
}

func writeRows(ctx context.Context, f *os.File, entries []freq.Entry, header bool) error {
	w := csv.NewWriter(f)
	if header {
		if err := w.Write([]string{"word", "count"}); err != nil {
			return err
		}
	}
	record := make([]string, 2)
	for i, e := range entries {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		record[0] = e.Word
		record[1] = strconv.FormatUint(e.Count, 10)
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }
