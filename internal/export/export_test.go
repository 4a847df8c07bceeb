package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"registro-clientes/internal/domain/report"
)

func sampleResult() *report.Result {
	return &report.Result{
		Columns: []string{"Tipo Cliente", "Cantidad Correos"},
		Rows: [][]any{
			{"Cliente Minorista", 12},
			{"Cliente Mayorista", 5},
			{"Cliente Corporativo", nil},
		},
	}
}

func TestCSVHeaderAndRows(t *testing.T) {
	out, err := CSV(&report.Result{
		Columns: []string{"A", "B"},
		Rows:    [][]any{{1, "x"}},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "A,B", lines[0])
	assert.Equal(t, "1,x", lines[1])
}

func TestCSVMissingValuesAreEmpty(t *testing.T) {
	out, err := CSV(sampleResult())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Cliente Corporativo,", lines[3])
}

func TestCSVPreservesRowOrder(t *testing.T) {
	out, err := CSV(sampleResult())
	require.NoError(t, err)

	lines := strings.Split(string(out), "\n")
	assert.True(t, strings.HasPrefix(lines[1], "Cliente Minorista"))
	assert.True(t, strings.HasPrefix(lines[2], "Cliente Mayorista"))
}

func TestCSVFormatsDates(t *testing.T) {
	day := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)
	out, err := CSV(&report.Result{
		Columns: []string{"Fecha Inicio"},
		Rows:    [][]any{{day}},
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), "2024-12-15")
}

func TestExcelRoundTrip(t *testing.T) {
	out, err := Excel(sampleResult())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Equal(t, []string{"Reporte"}, sheets)

	header, err := f.GetCellValue("Reporte", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Tipo Cliente", header)

	first, err := f.GetCellValue("Reporte", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Cliente Minorista", first)

	count, err := f.GetCellValue("Reporte", "B2")
	require.NoError(t, err)
	assert.Equal(t, "12", count)

	missing, err := f.GetCellValue("Reporte", "B4")
	require.NoError(t, err)
	assert.Equal(t, "", missing)
}

func TestPDFProducesDocument(t *testing.T) {
	out, err := PDF("Distribución de correos electrónicos", sampleResult())
	require.NoError(t, err)

	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestPDFRejectsEmptyColumns(t *testing.T) {
	_, err := PDF("vacío", &report.Result{})
	require.Error(t, err)
}

func TestChartBarPNG(t *testing.T) {
	out, err := Chart("Distribución de correos", report.ChartBar, sampleResult())
	require.NoError(t, err)

	// PNG magic header
	assert.True(t, bytes.HasPrefix(out, []byte("\x89PNG")))
}

func TestChartPiePNG(t *testing.T) {
	out, err := Chart("Preferencias", report.ChartPie, &report.Result{
		Columns: []string{"Preferencias", "Cantidad"},
		Rows:    [][]any{{"Tecnología", 7}, {"Hogar", 3}},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("\x89PNG")))
}

func TestChartGenericFindsNumericColumn(t *testing.T) {
	res := &report.Result{
		Columns: []string{"Cliente", "Comentario", "Total"},
		Rows:    [][]any{{"ACME SA", "sin datos", 4}},
	}
	out, err := Chart("Contratos activos", report.ChartGeneric, res)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestChartNoPlottableValues(t *testing.T) {
	res := &report.Result{
		Columns: []string{"Nombre"},
		Rows:    [][]any{{"solo texto"}},
	}
	_, err := Chart("vacío", report.ChartGeneric, res)
	require.Error(t, err)
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "", cellString(nil))
	assert.Equal(t, "1", cellString(1))
	assert.Equal(t, "1", cellString(float64(1)))
	assert.Equal(t, "x", cellString("x"))
}
