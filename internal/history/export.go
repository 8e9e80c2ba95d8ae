// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// exportLimit bounds how many runs a single export includes.
const exportLimit = 100000

// Export writes the most recent runs, each with its ranked words, to w as
// YAML or JSON. A limit of zero exports everything.
func (s *Store) Export(ctx context.Context, w io.Writer, format string, limit int) error {
	if limit <= 0 {
		limit = exportLimit
	}
	runs, err := s.List(ctx, limit)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}
	for i := range runs {
		words, err := s.Words(ctx, runs[i].ID)
		if err != nil {
			return err
		}
		runs[i].Words = words
	}
	if runs == nil {
		runs = []Run{}
	}

	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(runs); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}
