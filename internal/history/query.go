// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pdiddy/wordfreq/pkg/types"
)

// ErrRunNotFound is returned when a run ID does not exist.
var ErrRunNotFound = errors.New("run not found")

// Run is a recorded report. Words is only populated by Get.
type Run struct {
	ID int64 `json:"id" yaml:"id"`
	types.Report `yaml:",inline"`
}

// Occurrence places a word in one recorded run.
type Occurrence struct {
	RunID       int64     `json:"run_id" yaml:"run_id"`
	Source      string    `json:"source" yaml:"source"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Rank        int       `json:"rank" yaml:"rank"`
	Count       int       `json:"count" yaml:"count"`
}

const runColumns = `id, source, result_file, exports, generated_at, top_n, total_tokens, distinct_tokens`

// List returns recorded runs, newest first. A limit of zero uses the store
// default.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = s.maxResults
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs ORDER BY generated_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Get returns one run with its ranked words.
func (s *Store) Get(ctx context.Context, id int64) (Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("run %d: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return Run{}, err
	}

	words, err := s.Words(ctx, id)
	if err != nil {
		return Run{}, err
	}
	r.Words = words
	return r, nil
}

// Words returns the ranked rows of a run, rank 1 first.
func (s *Store) Words(ctx context.Context, runID int64) ([]types.WordCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word, count FROM words WHERE run_id = ? ORDER BY rank`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying words of run %d: %w", runID, err)
	}
	defer rows.Close()

	var words []types.WordCount
	for rows.Next() {
		var wc types.WordCount
		if err := rows.Scan(&wc.Word, &wc.Count); err != nil {
			return nil, fmt.Errorf("scanning word: %w", err)
		}
		words = append(words, wc)
	}
	return words, rows.Err()
}

// Lookup returns the runs in which word was ranked, newest first. A limit
// of zero uses the store default.
func (s *Store) Lookup(ctx context.Context, word string, limit int) ([]Occurrence, error) {
	if limit <= 0 {
		limit = s.maxResults
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.source, r.generated_at, w.rank, w.count
		 FROM words w JOIN runs r ON r.id = w.run_id
		 WHERE w.word = ?
		 ORDER BY r.generated_at DESC, r.id DESC
		 LIMIT ?`, word, limit)
	if err != nil {
		return nil, fmt.Errorf("looking up %q: %w", word, err)
	}
	defer rows.Close()

	var out []Occurrence
	for rows.Next() {
		var (
			o  Occurrence
			ts string
		)
		if err := rows.Scan(&o.RunID, &o.Source, &ts, &o.Rank, &o.Count); err != nil {
			return nil, fmt.Errorf("scanning occurrence: %w", err)
		}
		o.GeneratedAt = parseTime(ts)
		out = append(out, o)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r           Run
		exportsJSON sql.NullString
		ts          string
	)
	err := sc.Scan(&r.ID, &r.Source, &r.ResultFile, &exportsJSON, &ts,
		&r.TopN, &r.TotalTokens, &r.DistinctTokens)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scanning run: %w", err)
	}
	if exportsJSON.Valid && exportsJSON.String != "" {
		_ = json.Unmarshal([]byte(exportsJSON.String), &r.Exports)
	}
	r.GeneratedAt = parseTime(ts)
	return r, nil
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
