// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records completed analyses in a SQLite database so past
// rankings can be listed, inspected, and searched by word.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/wordfreq/pkg/types"
)

const (
	dbFile = "history.db"

	// DefaultDir is where history.db lives when no directory is configured.
	DefaultDir = ".wordfreq"

	defaultMaxResults = 20
)

// Store manages the history SQLite database.
type Store struct {
	db         *sql.DB
	path       string
	maxResults int
}

// NewStore opens or creates the history database at cfg.Dir/history.db and
// creates the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	path := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, path: path, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return s, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			result_file TEXT NOT NULL,
			exports TEXT,
			generated_at TEXT NOT NULL,
			top_n INTEGER NOT NULL,
			total_tokens INTEGER NOT NULL,
			distinct_tokens INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS words (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			rank INTEGER NOT NULL,
			word TEXT NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (run_id, rank)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_words_word ON words(word)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_generated_at ON runs(generated_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores a completed report and its ranked words in one transaction
// and returns the new run ID.
func (s *Store) Record(ctx context.Context, rep types.Report) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	exportsJSON, _ := json.Marshal(rep.Exports)
	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (source, result_file, exports, generated_at, top_n, total_tokens, distinct_tokens)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rep.Source, rep.ResultFile, string(exportsJSON), rep.GeneratedAt.Format(time.RFC3339),
		rep.TopN, rep.TotalTokens, rep.DistinctTokens,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO words (run_id, rank, word, count) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, wc := range rep.Words {
		if _, err := stmt.ExecContext(ctx, runID, i+1, wc.Word, wc.Count); err != nil {
			return 0, fmt.Errorf("inserting word %q: %w", wc.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Prune deletes all but the keep most recent runs and returns how many were
// removed.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM runs WHERE id NOT IN (
			SELECT id FROM runs ORDER BY generated_at DESC, id DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning runs: %w", err)
	}
	return res.RowsAffected()
}
