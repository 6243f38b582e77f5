// Package sqlite stores frequency tables in a SQLite database, one set of
// rows per run, so that several corpora or re-runs can be compared.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/wordfreq/pkg/wordfreq/freq"
	"github.com/cognicore/wordfreq/pkg/wordfreq/internalerr"
	"github.com/cognicore/wordfreq/pkg/wordfreq/store"
)

// timeLayout is fixed width so that stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store implements store.Store on SQLite
type Store struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (creating if needed) the database at path with WAL mode
// enabled and the schema in place. Writers wait up to five seconds for a
// lock held by another connection.
func OpenSQLite(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, internalerr.WithPath(internalerr.ErrOutputWrite, path, err)
	}
	// PRAGMAs are per connection.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, internalerr.WithPath(internalerr.ErrOutputWrite, path, fmt.Errorf("apply pragma %q: %w", pragma, err))
		}
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, internalerr.WithPath(internalerr.ErrOutputWrite, path, err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	root TEXT NOT NULL,
	extension TEXT NOT NULL,
	files INTEGER NOT NULL,
	started_at TEXT NOT NULL,
	finished_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS word_counts (
	run_id TEXT NOT NULL,
	word TEXT NOT NULL,
	count INTEGER NOT NULL,
	PRIMARY KEY(run_id, word),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_word_counts_word ON word_counts(word);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// WriteTable records run and all of its entries in one transaction.
func (s *Store) WriteTable(ctx context.Context, run store.Run, entries []freq.Entry) error {
	p, err := s.Stage(ctx, run, entries)
	if err != nil {
		return err
	}
	return p.Commit()
}

// Stage inserts run and its entries inside an open transaction. Nothing is
// visible to other connections until Commit.
func (s *Store) Stage(ctx context.Context, run store.Run, entries []freq.Entry) (store.Pending, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, internalerr.WithPath(internalerr.ErrOutputWrite, s.path, err)
	}
	if err := insertRun(ctx, tx, run, entries); err != nil {
		_ = tx.Rollback()
		return nil, internalerr.WithPath(internalerr.ErrOutputWrite, s.path, err)
	}
	return &pending{tx: tx, path: s.path}, nil
}

type pending struct {
	tx   *sql.Tx
	path string
}

func (p *pending) Commit() error {
	if err := p.tx.Commit(); err != nil {
		return internalerr.WithPath(internalerr.ErrOutputWrite, p.path, err)
	}
	return nil
}

func (p *pending) Abort() {
	_ = p.tx.Rollback()
}

func insertRun(ctx context.Context, tx *sql.Tx, run store.Run, entries []freq.Entry) error {
	_, err := tx.ExecContext(ctx, `
INSERT INTO runs (id, root, extension, files, started_at, finished_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Root,
		run.Extension,
		run.Files,
		run.StartedAt.UTC().Format(timeLayout),
		run.FinishedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO word_counts (run_id, word, count) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, run.ID, e.Word, int64(e.Count)); err != nil {
			return fmt.Errorf("insert %q: %w", e.Word, err)
		}
	}
	return nil
}

// Runs lists stored runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]store.Run, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, root, extension, files, started_at, finished_at
FROM runs
ORDER BY started_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		var r store.Run
		var started, finished string
		if err := rows.Scan(&r.ID, &r.Root, &r.Extension, &r.Files, &started, &finished); err != nil {
			return nil, err
		}
		r.StartedAt, _ = time.Parse(timeLayout, started)
		r.FinishedAt, _ = time.Parse(timeLayout, finished)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Counts returns the entries of one run, most frequent first.
func (s *Store) Counts(ctx context.Context, runID string) ([]freq.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT word, count FROM word_counts
WHERE run_id = ?
ORDER BY count DESC, word ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []freq.Entry
	for rows.Next() {
		var e freq.Entry
		var count int64
		if err := rows.Scan(&e.Word, &count); err != nil {
			return nil, err
		}
		e.Count = uint64(count)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
