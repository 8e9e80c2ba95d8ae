// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs documents through extraction, counting, reporting,
// and history recording.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/pdiddy/wordfreq/internal/extract"
	"github.com/pdiddy/wordfreq/internal/frequency"
	"github.com/pdiddy/wordfreq/internal/report"
	"github.com/pdiddy/wordfreq/pkg/types"
)

// DocumentReader turns a local file into extracted text runs.
type DocumentReader interface {
	Extract(ctx context.Context, path string) (types.Document, error)
}

// Downloader fetches a remote document into dir and returns its local path.
type Downloader interface {
	Fetch(ctx context.Context, rawURL, dir string) (string, error)
}

// Recorder stores completed reports.
type Recorder interface {
	Record(ctx context.Context, rep types.Report) (int64, error)
}

// Pipeline analyzes one document at a time.
type Pipeline struct {
	reader     DocumentReader
	downloader Downloader
	analyzer   *frequency.Analyzer
	reporter   *report.Reporter
	history    Recorder
}

// New returns a Pipeline. downloader may be nil, in which case URLs are
// rejected. history may be nil to skip recording.
func New(reader DocumentReader, downloader Downloader, analyzer *frequency.Analyzer, reporter *report.Reporter, history Recorder) *Pipeline {
	return &Pipeline{
		reader:     reader,
		downloader: downloader,
		analyzer:   analyzer,
		reporter:   reporter,
		history:    history,
	}
}

// Analyze extracts the document named by ref (a path or http(s) URL), ranks
// its words, and writes the result file. The returned report carries the
// result file path. A failure to record history is logged and does not fail
// the analysis.
func (p *Pipeline) Analyze(ctx context.Context, ref string) (types.Report, error) {
	local := ref
	if extract.IsURL(ref) {
		if p.downloader == nil {
			return types.Report{}, fmt.Errorf("cannot fetch %s: downloads are not configured", ref)
		}
		dir, err := os.MkdirTemp("", "wordfreq-")
		if err != nil {
			return types.Report{}, fmt.Errorf("creating download directory: %w", err)
		}
		defer os.RemoveAll(dir)

		local, err = p.downloader.Fetch(ctx, ref, dir)
		if err != nil {
			return types.Report{}, fmt.Errorf("fetching %s: %w", ref, err)
		}
		log.Debug().Str("url", ref).Str("path", local).Msg("downloaded document")
	}

	doc, err := p.reader.Extract(ctx, local)
	if err != nil {
		return types.Report{}, err
	}
	log.Debug().Str("path", local).Str("format", string(doc.Format)).Int("runs", len(doc.Runs)).Msg("extracted document")

	res := p.analyzer.Analyze(extract.ReadDocumentText(doc))
	rep := types.Report{
		Source:         ref,
		TopN:           res.TopN,
		TotalTokens:    res.Total,
		DistinctTokens: res.Distinct,
		Words:          res.Words,
	}
	if err := p.reporter.WriteReport(&rep, local); err != nil {
		return types.Report{}, err
	}

	if p.history != nil {
		id, err := p.history.Record(ctx, rep)
		if err != nil {
			log.Warn().Err(err).Str("source", ref).Msg("could not record run history")
		} else {
			log.Debug().Int64("run", id).Msg("recorded run")
		}
	}
	return rep, nil
}

// BatchResult holds the outcome of a batch run.
type BatchResult struct {
	Analyzed int
	Failed   int
	Reports  []types.Report
}

// Total returns the number of documents processed.
func (r BatchResult) Total() int {
	return r.Analyzed + r.Failed
}

// HasFailures reports whether any document failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// AnalyzeBatch analyzes each reference in turn, printing per-document status
// to w and returning a summary. A failed document does not stop the batch.
// Once ctx is cancelled the remaining documents are counted as failed
// without being read.
func (p *Pipeline) AnalyzeBatch(ctx context.Context, refs []string, w io.Writer) BatchResult {
	var result BatchResult
	for _, ref := range refs {
		if ctx.Err() != nil {
			fmt.Fprintf(w, "failed:   %s (%v)\n", displayName(ref), ctx.Err())
			result.Failed++
			continue
		}
		rep, err := p.Analyze(ctx, ref)
		if err != nil {
			fmt.Fprintf(w, "failed:   %s (%v)\n", displayName(ref), err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "analyzed: %s -> %s\n", displayName(ref), rep.ResultFile)
		result.Analyzed++
		result.Reports = append(result.Reports, rep)
	}
	fmt.Fprintf(w, "\nBatch summary: %d analyzed, %d failed (total: %d)\n",
		result.Analyzed, result.Failed, result.Total())
	return result
}

func displayName(ref string) string {
	if extract.IsURL(ref) {
		return ref
	}
	return filepath.Base(ref)
}
