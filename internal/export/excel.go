package export

import (
	"fmt"

	"registro-clientes/internal/domain/report"

	"github.com/xuri/excelize/v2"
)

// sheetName matches the workbook layout of the original exports.
const sheetName = "Reporte"

// Excel serializes a report as an xlsx workbook with a single sheet:
// header row first, data rows below in their original order.
func Excel(result *report.Result) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, col := range result.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for r, row := range result.Rows {
		for c := range result.Columns {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			var value any
			if c < len(row) {
				value = cellString(row[c])
			} else {
				value = ""
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
