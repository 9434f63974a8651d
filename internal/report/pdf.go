package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/devlogdesk/devlog/internal/engine"
)

// WritePDF lays the report out as an A4 PDF under dir and returns the
// full path of the written file. The content mirrors the markdown
// rendering: days newest first, categories alphabetical, items numbered.
func WritePDF(dir string, rep engine.Report) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports directory: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Sprint Report: %s", rep.Sprint.Label()))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	meta := []string{
		fmt.Sprintf("Sprint ID: %s", rep.Sprint.ID),
		fmt.Sprintf("Sprint Code: %s", rep.Sprint.Code),
		fmt.Sprintf("Sprint Window: %s", rep.Sprint.Window()),
		fmt.Sprintf("Exported At: %s", rep.GeneratedAt.Format(time.RFC3339)),
	}
	if rep.From != "" {
		meta = append(meta, fmt.Sprintf("Report From: %s", rep.From))
	}
	if rep.To != "" {
		meta = append(meta, fmt.Sprintf("Report To: %s", rep.To))
	}
	meta = append(meta, fmt.Sprintf("Included Items: %d", rep.TotalItems))
	for _, line := range meta {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	if len(rep.Days) == 0 {
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, "No items found for the selected filters.")
		pdf.Ln(8)
	}
	for _, day := range rep.Days {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, day.Date)
		pdf.Ln(8)
		for _, cat := range day.Categories {
			pdf.SetFont("Arial", "B", 12)
			pdf.Cell(0, 8, cat.Name)
			pdf.Ln(7)
			pdf.SetFont("Arial", "", 12)
			for i, item := range cat.Items {
				pdf.MultiCell(0, 6, fmt.Sprintf("%d. %s", i+1, item.DisplayLine()), "", "", false)
			}
			pdf.Ln(3)
		}
		pdf.Ln(2)
	}

	path := filepath.Join(dir, fileName(rep, "pdf"))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write pdf report: %w", err)
	}
	return path, nil
}
