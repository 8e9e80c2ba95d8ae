// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultPrefix labels result files as word-frequency statistics.
	DefaultPrefix = "词频统计"

	// TimestampLayout is the second-resolution stamp embedded in result
	// filenames (YYYYMMDD_HHMMSS).
	TimestampLayout = "20060102_150405"

	textExt = ".txt"
	sep     = "_"
)

// ResultName is a result filename split back into its parts.
type ResultName struct {
	Label     string
	Base      string
	Timestamp time.Time
	Ext       string
}

// String reassembles the filename.
func (n ResultName) String() string {
	return Filename(n.Label, n.Base, n.Timestamp, n.Ext)
}

// Filename builds "<label>_<base>_<YYYYMMDD_HHMMSS><ext>".
func Filename(label, base string, ts time.Time, ext string) string {
	return label + sep + base + sep + ts.Format(TimestampLayout) + ext
}

// BaseName returns the document's file name without directory or extension.
func BaseName(docPath string) string {
	name := filepath.Base(docPath)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ParseFilename splits a result filename produced by Filename. The label
// ends at the first underscore and the timestamp occupies the last two
// underscore-separated fields, so the base name may itself contain
// underscores. Any directory part of name is ignored. The timestamp is
// interpreted in local time.
func ParseFilename(name string) (ResultName, error) {
	name = filepath.Base(name)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	label, rest, ok := strings.Cut(stem, sep)
	if !ok || label == "" {
		return ResultName{}, fmt.Errorf("result filename %q: missing label", name)
	}

	// rest is "<base>_<date>_<time>"; the date and time fields are fixed width.
	stampLen := len(TimestampLayout)
	if len(rest) < stampLen+len(sep) {
		return ResultName{}, fmt.Errorf("result filename %q: missing timestamp", name)
	}
	stamp := rest[len(rest)-stampLen:]
	if !strings.HasSuffix(rest[:len(rest)-stampLen], sep) {
		return ResultName{}, fmt.Errorf("result filename %q: malformed timestamp separator", name)
	}
	ts, err := time.ParseInLocation(TimestampLayout, stamp, time.Local)
	if err != nil {
		return ResultName{}, fmt.Errorf("result filename %q: parsing timestamp: %w", name, err)
	}

	return ResultName{
		Label:     label,
		Base:      rest[:len(rest)-stampLen-len(sep)],
		Timestamp: ts,
		Ext:       ext,
	}, nil
}
