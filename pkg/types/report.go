// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// WordCount is a counted token.
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// Report is the outcome of analyzing one document.
type Report struct {
	// Source is the document reference as given by the user (path or URL).
	Source string `json:"source" yaml:"source"`

	// ResultFile is the path of the text table written for this run.
	ResultFile string `json:"result_file" yaml:"result_file"`

	// Exports lists any additional files written (yaml, json, pdf).
	Exports []string `json:"exports,omitempty" yaml:"exports,omitempty"`

	// GeneratedAt is the wall-clock time encoded in ResultFile.
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	// TopN is the ranking limit the report was produced with.
	TopN int `json:"top_n" yaml:"top_n"`

	// TotalTokens is the number of tokens that survived filtering.
	TotalTokens int `json:"total_tokens" yaml:"total_tokens"`

	// DistinctTokens is the number of distinct surviving tokens.
	DistinctTokens int `json:"distinct_tokens" yaml:"distinct_tokens"`

	// Words holds the ranked rows, highest count first.
	Words []WordCount `json:"words" yaml:"words"`
}
