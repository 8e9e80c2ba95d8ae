// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes ranked word counts to timestamped result files and
// echoes them to the console.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pdiddy/wordfreq/pkg/types"
)

// Reporter writes result files into a directory.
type Reporter struct {
	outputDir string
	prefix    string
	formats   []types.ReportFormat
	console   io.Writer

	// now returns the wall-clock time used in filenames. Tests override it.
	now func() time.Time
}

// New validates cfg and returns a Reporter that echoes tables to console.
// A nil console disables the echo.
func New(cfg types.ReportConfig, console io.Writer) (*Reporter, error) {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if strings.Contains(prefix, sep) {
		return nil, fmt.Errorf("report prefix %q must not contain %q", prefix, sep)
	}
	if strings.ContainsAny(prefix, `/\`) {
		return nil, fmt.Errorf("report prefix %q must not contain a path separator", prefix)
	}

	outDir := cfg.OutputDir
	if outDir == "" {
		outDir = "."
	}

	for _, f := range cfg.Formats {
		switch f {
		case types.ReportText, types.ReportYAML, types.ReportJSON, types.ReportPDF:
		default:
			return nil, fmt.Errorf("unsupported report format %q: use text, yaml, json, or pdf", f)
		}
	}

	if console == nil {
		console = io.Discard
	}

	return &Reporter{
		outputDir: outDir,
		prefix:    prefix,
		formats:   cfg.Formats,
		console:   console,
		now:       time.Now,
	}, nil
}

// Write writes the ranked words for the document at docPath and returns the
// path of the text result file.
func (r *Reporter) Write(words []types.WordCount, docPath string) (string, error) {
	rep := types.Report{Source: docPath, Words: words}
	if err := r.WriteReport(&rep, docPath); err != nil {
		return "", err
	}
	return rep.ResultFile, nil
}

// WriteReport writes the text table for rep, echoes it to the console, and
// writes any additional configured formats. It fills in rep.ResultFile,
// rep.GeneratedAt, and rep.Exports. docPath names the local document the
// result files are named after; it may differ from rep.Source for
// downloaded documents.
func (r *Reporter) WriteReport(rep *types.Report, docPath string) error {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", r.outputDir, err)
	}

	ts := r.now().Truncate(time.Second)
	base := BaseName(docPath)
	pathFor := func(ext string) string {
		return filepath.Join(r.outputDir, Filename(r.prefix, base, ts, ext))
	}

	var buf bytes.Buffer
	if err := WriteTable(&buf, rep.Words); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	textPath := pathFor(textExt)
	if err := os.WriteFile(textPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing result file %s: %w", textPath, err)
	}
	rep.ResultFile = textPath
	rep.GeneratedAt = ts
	log.Debug().Str("file", textPath).Int("rows", len(rep.Words)).Msg("wrote result table")

	fmt.Fprintln(r.console)
	if _, err := r.console.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("echoing table: %w", err)
	}

	rep.Exports = nil
	for _, f := range r.formats {
		var (
			path string
			err  error
		)
		switch f {
		case types.ReportText:
			continue
		case types.ReportYAML:
			path = pathFor(".yaml")
			err = ExportYAML(rep, path)
		case types.ReportJSON:
			path = pathFor(".json")
			err = ExportJSON(rep, path)
		case types.ReportPDF:
			path = pathFor(".pdf")
			err = ExportPDF(rep, path)
		}
		if err != nil {
			return fmt.Errorf("exporting %s report: %w", f, err)
		}
		rep.Exports = append(rep.Exports, path)
		log.Debug().Str("file", path).Str("format", string(f)).Msg("wrote export")
	}

	return nil
}
