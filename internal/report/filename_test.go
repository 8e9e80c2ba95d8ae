// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	ts := time.Date(2026, 3, 7, 9, 5, 2, 0, time.Local)
	assert.Equal(t, "词频统计_essay_20260307_090502.txt", Filename(DefaultPrefix, "essay", ts, ".txt"))
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "/tmp/docs/essay.docx", want: "essay"},
		{in: "essay.docx", want: "essay"},
		{in: "my.final.draft.docx", want: "my.final.draft"},
		{in: "noext", want: "noext"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, BaseName(tt.in))
		})
	}
}

func TestParseFilename_RoundTrip(t *testing.T) {
	ts := time.Date(2025, 12, 31, 23, 59, 58, 0, time.Local)
	tests := []struct {
		name  string
		label string
		base  string
		ext   string
	}{
		{name: "simple", label: DefaultPrefix, base: "report", ext: ".txt"},
		{name: "underscores in base", label: DefaultPrefix, base: "q3_sales_notes", ext: ".txt"},
		{name: "dots in base", label: "wf", base: "v1.2.draft", ext: ".json"},
		{name: "empty base", label: "wf", base: "", ext: ".txt"},
		{name: "digits in base", label: "wf", base: "20240101_000000", ext: ".yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := Filename(tt.label, tt.base, ts, tt.ext)
			got, err := ParseFilename("/some/dir/" + name)
			require.NoError(t, err)
			assert.Equal(t, tt.label, got.Label)
			assert.Equal(t, tt.base, got.Base)
			assert.True(t, ts.Equal(got.Timestamp), "timestamp %v != %v", got.Timestamp, ts)
			assert.Equal(t, tt.ext, got.Ext)
			assert.Equal(t, name, got.String())
		})
	}
}

func TestParseFilename_Errors(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		errMsg string
	}{
		{name: "no separator", in: "report.txt", errMsg: "missing label"},
		{name: "empty label", in: "_doc_20250101_120000.txt", errMsg: "missing label"},
		{name: "too short", in: "wf_20250101.txt", errMsg: "missing timestamp"},
		{name: "bad separator", in: "wf_doc-20250101_120000.txt", errMsg: "malformed timestamp separator"},
		{name: "bad date", in: "wf_doc_20251399_120000.txt", errMsg: "parsing timestamp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFilename(tt.in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
