// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package frequency

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/wordfreq/pkg/types"
)

const (
	// DefaultTopN is the number of ranked words kept when none is configured.
	DefaultTopN = 100
	// DefaultMinLength is the shortest token counted when none is configured.
	DefaultMinLength = 2
)

// Table maps tokens to counts and remembers the order in which each token
// was first seen.
type Table struct {
	order  []string
	counts map[string]int
	total  int
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{counts: make(map[string]int)}
}

// Add counts one occurrence of tok.
func (t *Table) Add(tok string) {
	if _, ok := t.counts[tok]; !ok {
		t.order = append(t.order, tok)
	}
	t.counts[tok]++
	t.total++
}

// Count returns how often tok was added.
func (t *Table) Count(tok string) int {
	return t.counts[tok]
}

// Len returns the number of distinct tokens.
func (t *Table) Len() int {
	return len(t.order)
}

// Total returns the number of tokens added, which is the sum of all counts.
func (t *Table) Total() int {
	return t.total
}

// Entries returns every token with its count in first-occurrence order.
func (t *Table) Entries() []types.WordCount {
	out := make([]types.WordCount, len(t.order))
	for i, tok := range t.order {
		out[i] = types.WordCount{Word: tok, Count: t.counts[tok]}
	}
	return out
}

// Top returns the n most frequent tokens, highest count first. Tokens with
// equal counts keep their first-occurrence order. A negative n ranks every
// token; zero returns nothing.
func (t *Table) Top(n int) []types.WordCount {
	entries := t.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n >= 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// Counter splits normalized text into tokens and tallies the ones that are
// neither stop words nor shorter than MinLength.
type Counter struct {
	StopWords StopWords
	MinLength int
}

// NewCounter returns a Counter with the built-in stop words and the default
// minimum length.
func NewCounter() *Counter {
	return &Counter{StopWords: DefaultStopWords(), MinLength: DefaultMinLength}
}

// NewCounterFromConfig builds a Counter from analysis settings, loading the
// stop-word file if one is configured.
func NewCounterFromConfig(cfg types.AnalysisConfig) (*Counter, error) {
	sw := DefaultStopWords()
	if cfg.ReplaceStopWords {
		sw = NewStopWords()
	}
	sw.Add(cfg.StopWords...)

	if cfg.StopWordsFile != "" {
		extra, err := LoadStopWordsFile(cfg.StopWordsFile)
		if err != nil {
			return nil, err
		}
		sw.Add(extra...)
	}

	minLen := cfg.MinLength
	if minLen <= 0 {
		minLen = DefaultMinLength
	}
	return &Counter{StopWords: sw, MinLength: minLen}, nil
}

// Tokens splits text on runs of whitespace and returns the tokens that
// survive stop-word and length filtering, in order.
func (c *Counter) Tokens(text string) []string {
	fields := strings.Fields(text)
	out := fields[:0]
	for _, f := range fields {
		if c.keep(f) {
			out = append(out, f)
		}
	}
	return out
}

// Count tallies the surviving tokens of text.
func (c *Counter) Count(text string) *Table {
	t := NewTable()
	for _, f := range strings.Fields(text) {
		if c.keep(f) {
			t.Add(f)
		}
	}
	return t
}

func (c *Counter) keep(tok string) bool {
	if len(tok) < c.MinLength {
		return false
	}
	return !c.StopWords.Contains(tok)
}

// Analyzer runs normalization and counting with fixed settings.
type Analyzer struct {
	counter *Counter
	fold    bool
	topN    int
}

// Result is the ranked outcome of one analysis.
type Result struct {
	Words    []types.WordCount
	Total    int
	Distinct int
	TopN     int
}

// NewAnalyzer builds an Analyzer from analysis settings. A zero TopN means
// DefaultTopN.
func NewAnalyzer(cfg types.AnalysisConfig) (*Analyzer, error) {
	c, err := NewCounterFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("building counter: %w", err)
	}
	topN := cfg.TopN
	if topN == 0 {
		topN = DefaultTopN
	}
	return &Analyzer{counter: c, fold: cfg.FoldDiacritics, topN: topN}, nil
}

// StopWords returns the active stop-word set.
func (a *Analyzer) StopWords() StopWords {
	return a.counter.StopWords
}

// Analyze normalizes raw text, counts its tokens, and ranks the top words.
func (a *Analyzer) Analyze(raw string) Result {
	normalize := Normalize
	if a.fold {
		normalize = NormalizeFolded
	}
	t := a.counter.Count(normalize(raw))
	return Result{
		Words:    t.Top(a.topN),
		Total:    t.Total(),
		Distinct: t.Len(),
		TopN:     a.topN,
	}
}
