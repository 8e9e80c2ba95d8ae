// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLine bounds a single line of a plain-text document.
const maxLine = 16 * 1024 * 1024

// TextExtractor reads plain text and Markdown. A leading byte-order mark
// selects UTF-16LE, UTF-16BE, or UTF-8; without one the file is read as
// UTF-8. Each line becomes one run.
type TextExtractor struct{}

// Extract returns the lines of the file at path.
func (TextExtractor) Extract(_ context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening text file: %w", err)
	}
	defer f.Close()

	dec := xunicode.BOMOverride(xunicode.UTF8.NewDecoder())
	sc := bufio.NewScanner(transform.NewReader(f, dec))
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading text file: %w", err)
	}
	return lines, nil
}
