// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/wordfreq/internal/container"
)

// DefaultContainerImage is the markitdown image used when none is configured.
const DefaultContainerImage = "markitdown:latest"

// ContainerExtractor converts documents by piping them through the
// markitdown container image and splitting the Markdown it prints into
// lines. It handles formats without a native backend (PDF, PowerPoint,
// Excel, OpenDocument, EPUB, RTF).
type ContainerExtractor struct {
	runtime container.Runtime
	image   string
}

// NewContainerExtractor creates an extractor that runs image on rt. It
// verifies that the image exists locally before returning.
func NewContainerExtractor(ctx context.Context, rt container.Runtime, image string) (*ContainerExtractor, error) {
	if image == "" {
		image = DefaultContainerImage
	}
	if err := rt.ImageExists(ctx, image); err != nil {
		return nil, fmt.Errorf("%s image not available in %s: %w", image, rt.Name(), err)
	}
	return &ContainerExtractor{runtime: rt, image: image}, nil
}

// Extract pipes the file at path through the container and returns the
// non-empty output lines.
func (m *ContainerExtractor) Extract(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	var out bytes.Buffer
	if err := m.runtime.Run(ctx, m.image, f, &out); err != nil {
		return nil, fmt.Errorf("converting with %s: %w", m.image, err)
	}
	if out.Len() == 0 {
		return nil, fmt.Errorf("%s produced empty output", m.image)
	}

	var lines []string
	sc := bufio.NewScanner(&out)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s output: %w", m.image, err)
	}
	return lines, nil
}
