// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Format identifies how a document's text is extracted.
type Format string

const (
	FormatDocx      Format = "docx"
	FormatPlain     Format = "text"
	FormatMarkdown  Format = "markdown"
	FormatHTML      Format = "html"
	FormatContainer Format = "container"
)

// Document holds the text runs extracted from a source file.
type Document struct {
	// Path is the local filesystem path the document was read from.
	Path string `json:"path" yaml:"path"`

	// Name is the base name of Path without its extension (e.g. "essay"
	// for "/tmp/essay.docx").
	Name string `json:"name" yaml:"name"`

	// Format is the detected document format.
	Format Format `json:"format" yaml:"format"`

	// Runs holds the document's paragraphs (or lines) in source order.
	Runs []string `json:"runs" yaml:"runs"`
}
