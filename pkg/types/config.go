// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds settings for fetching documents given as http(s) URLs.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "wordfreq/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// MaxRetries is the number of retries on HTTP 429 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// ExtractionConfig holds settings for the extraction stage.
type ExtractionConfig struct {
	HTTP HTTPConfig `json:"http" yaml:"http" mapstructure:"http"`

	// MaxFileSize rejects documents larger than this many bytes (0 disables).
	MaxFileSize int64 `json:"max_file_size" yaml:"max_file_size" mapstructure:"max_file_size"`

	// ContainerImage is the markitdown image used for formats without a
	// native extractor.
	ContainerImage string `json:"container_image" yaml:"container_image" mapstructure:"container_image"`

	// DisableContainer turns off the container backend even when a runtime
	// is available.
	DisableContainer bool `json:"disable_container" yaml:"disable_container" mapstructure:"disable_container"`
}

// AnalysisConfig holds settings for normalization and counting.
type AnalysisConfig struct {
	// TopN is the maximum number of ranked words in a report (default 100).
	// A negative value ranks every distinct word.
	TopN int `json:"top_n" yaml:"top_n" mapstructure:"top_n"`

	// MinLength is the shortest token that is counted (default 2).
	MinLength int `json:"min_length" yaml:"min_length" mapstructure:"min_length"`

	// StopWords lists additional stop words.
	StopWords []string `json:"stop_words" yaml:"stop_words" mapstructure:"stop_words"`

	// StopWordsFile points at a YAML file of additional stop words.
	StopWordsFile string `json:"stop_words_file" yaml:"stop_words_file" mapstructure:"stop_words_file"`

	// ReplaceStopWords drops the built-in English list, keeping only
	// StopWords and StopWordsFile.
	ReplaceStopWords bool `json:"replace_stop_words" yaml:"replace_stop_words" mapstructure:"replace_stop_words"`

	// FoldDiacritics maps accented letters to their base letter before
	// non-ASCII characters are stripped.
	FoldDiacritics bool `json:"fold_diacritics" yaml:"fold_diacritics" mapstructure:"fold_diacritics"`
}

// ReportFormat selects a report output format.
type ReportFormat string

const (
	ReportText ReportFormat = "text"
	ReportYAML ReportFormat = "yaml"
	ReportJSON ReportFormat = "json"
	ReportPDF  ReportFormat = "pdf"
)

// ReportConfig holds settings for the report stage.
type ReportConfig struct {
	// OutputDir is the directory result files are written to (default ".").
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// Prefix is the label that starts every result filename. It may not
	// contain an underscore.
	Prefix string `json:"prefix" yaml:"prefix" mapstructure:"prefix"`

	// Formats lists the outputs to write. The text table is always written.
	Formats []ReportFormat `json:"formats" yaml:"formats" mapstructure:"formats"`
}

// HistoryConfig holds settings for the run history store.
type HistoryConfig struct {
	// Enabled controls whether completed runs are recorded.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Dir is the directory holding history.db (default ".wordfreq").
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// MaxResults is the default number of rows returned by queries (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// Config groups all stage configurations.
type Config struct {
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction" mapstructure:"extraction"`
	Analysis   AnalysisConfig   `json:"analysis" yaml:"analysis" mapstructure:"analysis"`
	Report     ReportConfig     `json:"report" yaml:"report" mapstructure:"report"`
	History    HistoryConfig    `json:"history" yaml:"history" mapstructure:"history"`
}
