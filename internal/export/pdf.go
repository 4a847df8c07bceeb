package export

import (
	"bytes"
	"fmt"

	"registro-clientes/internal/domain/report"

	"github.com/go-pdf/fpdf"
)

// PDF renders a report as a single landscape table: title, header row,
// then the data rows in order.
func PDF(title string, result *report.Result) ([]byte, error) {
	if len(result.Columns) == 0 {
		return nil, fmt.Errorf("report has no columns")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(result.Columns))

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range result.Columns {
		pdf.CellFormat(colWidth, 7, tr(col), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, row := range result.Rows {
		for i := range result.Columns {
			var text string
			if i < len(row) {
				text = cellString(row[i])
			}
			pdf.CellFormat(colWidth, 6, tr(text), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
