package export

import (
	"bytes"
	"fmt"

	"registro-clientes/internal/domain/report"

	chart "github.com/wcharczuk/go-chart/v2"
)

const maxChartEntries = 20

// Chart renders a report as a PNG image. Bar charts plot the first
// column against the second; pie charts treat them as label and size;
// the generic rendering finds the first numeric cell per row. These
// match the graphics the original application drew for its reports.
func Chart(title string, kind report.ChartKind, result *report.Result) ([]byte, error) {
	values, err := chartValues(kind, result)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch kind {
	case report.ChartPie:
		graph := chart.PieChart{
			Title:  title,
			Width:  800,
			Height: 520,
			Values: values,
		}
		if err := graph.Render(chart.PNG, &buf); err != nil {
			return nil, fmt.Errorf("failed to render pie chart: %w", err)
		}
	default:
		graph := chart.BarChart{
			Title:    title,
			Width:    800,
			Height:   520,
			BarWidth: 40,
			Bars:     values,
		}
		if err := graph.Render(chart.PNG, &buf); err != nil {
			return nil, fmt.Errorf("failed to render bar chart: %w", err)
		}
	}
	return buf.Bytes(), nil
}

func chartValues(kind report.ChartKind, result *report.Result) ([]chart.Value, error) {
	var values []chart.Value

	for _, row := range result.Rows {
		if len(values) == maxChartEntries {
			break
		}
		if len(row) == 0 {
			continue
		}

		label := cellString(row[0])
		if label == "" {
			label = "Sin dato"
		}
		if len(label) > 20 {
			label = label[:20]
		}

		var size float64
		var found bool
		switch kind {
		case report.ChartBar, report.ChartPie:
			if len(row) > 1 {
				size, found = cellFloat(row[1])
			}
		default:
			for _, cell := range row[1:] {
				if v, ok := cellFloat(cell); ok {
					size, found = v, true
					break
				}
			}
		}
		if !found {
			continue
		}
		values = append(values, chart.Value{Label: label, Value: size})
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("report has no plottable values")
	}
	return values, nil
}
