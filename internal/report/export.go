// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/wordfreq/pkg/types"
)

// ExportYAML writes rep to path as YAML.
func ExportYAML(rep *types.Report, path string) error {
	data, err := yaml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes rep to path as indented JSON.
func ExportJSON(rep *types.Report, path string) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// ExportPDF renders rep as a one-table PDF. The core PDF fonts cannot show
// CJK text, so headings are in English; the words themselves are ASCII.
func ExportPDF(rep *types.Report, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Word frequency statistics", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Word frequency statistics", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr("Source: "+rep.Source), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Generated: "+rep.GeneratedAt.Format("2006-01-02 15:04:05"), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Tokens: %d total, %d distinct", rep.TotalTokens, rep.DistinctTokens), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	widths := []float64{20, 80, 30}
	pdf.SetFont("Helvetica", "B", 11)
	for i, h := range []string{"Rank", "Word", "Count"} {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 11)
	for i, wc := range rep.Words {
		pdf.CellFormat(widths[0], 6, strconv.Itoa(i+1), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, wc.Word, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, strconv.Itoa(wc.Count), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing PDF %s: %w", path, err)
	}
	return nil
}
