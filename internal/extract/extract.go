// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract reads documents into ordered text runs (paragraphs or
// lines) with pluggable per-format backends.
package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/wordfreq/pkg/types"
)

// Extractor reads one document format. Different backends (docx, plain
// text, HTML, markitdown) implement this interface.
type Extractor interface {
	// Extract reads the document at path and returns its text runs in
	// source order.
	Extract(ctx context.Context, path string) ([]string, error)
}

// ExtractorFunc adapts a plain function to Extractor.
type ExtractorFunc func(ctx context.Context, path string) ([]string, error)

// Extract calls f.
func (f ExtractorFunc) Extract(ctx context.Context, path string) ([]string, error) {
	return f(ctx, path)
}

// containerExts lists extensions handed to the container backend.
var containerExts = map[string]bool{
	".pdf": true, ".doc": true, ".rtf": true, ".odt": true, ".epub": true,
	".pptx": true, ".ppt": true, ".xlsx": true, ".xls": true,
}

// Detect returns the document format for path based on its extension.
// Unknown extensions are treated as docx, so a file that is not a Word
// document fails with a parse error rather than being silently skipped.
func Detect(path string) types.Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".txt" || ext == ".text":
		return types.FormatPlain
	case ext == ".md" || ext == ".markdown":
		return types.FormatMarkdown
	case ext == ".html" || ext == ".htm" || ext == ".xhtml":
		return types.FormatHTML
	case containerExts[ext]:
		return types.FormatContainer
	default:
		return types.FormatDocx
	}
}

// Registry dispatches documents to the extractor registered for their format.
type Registry struct {
	extractors  map[types.Format]Extractor
	maxFileSize int64
}

// NewRegistry returns a Registry with the native backends (docx, plain text,
// markdown, HTML) registered. The container backend needs a runtime and is
// added with Register.
func NewRegistry(cfg types.ExtractionConfig) *Registry {
	text := TextExtractor{}
	return &Registry{
		extractors: map[types.Format]Extractor{
			types.FormatDocx:     DocxExtractor{},
			types.FormatPlain:    text,
			types.FormatMarkdown: text,
			types.FormatHTML:     HTMLExtractor{},
		},
		maxFileSize: cfg.MaxFileSize,
	}
}

// Register sets the extractor for format, replacing any existing one.
func (r *Registry) Register(format types.Format, e Extractor) {
	r.extractors[format] = e
}

// Supports reports whether an extractor is registered for format.
func (r *Registry) Supports(format types.Format) bool {
	_, ok := r.extractors[format]
	return ok
}

// Extract reads the document at path with the backend for its format.
func (r *Registry) Extract(ctx context.Context, path string) (types.Document, error) {
	format := Detect(path)
	e, ok := r.extractors[format]
	if !ok {
		return types.Document{}, fmt.Errorf(
			"no extractor for %s (%s documents need docker or podman with the markitdown image)",
			path, filepath.Ext(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		return types.Document{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return types.Document{}, fmt.Errorf("%s is a directory", path)
	}
	if r.maxFileSize > 0 && info.Size() > r.maxFileSize {
		return types.Document{}, fmt.Errorf("%s is too large: %d bytes (max %d)", path, info.Size(), r.maxFileSize)
	}

	runs, err := e.Extract(ctx, path)
	if err != nil {
		return types.Document{}, fmt.Errorf("extracting %s (%s): %w", path, format, err)
	}

	name := filepath.Base(path)
	return types.Document{
		Path:   path,
		Name:   strings.TrimSuffix(name, filepath.Ext(name)),
		Format: format,
		Runs:   runs,
	}, nil
}

// ReadDocumentText joins the document's runs with a single space.
func ReadDocumentText(doc types.Document) string {
	return strings.Join(doc.Runs, " ")
}
