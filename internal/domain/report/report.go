package report

// Result is the outcome of one catalog query: display column labels in
// presentation order, and rows whose values follow the same order.
type Result struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// ChartKind selects how a report is rendered graphically.
type ChartKind string

const (
	ChartBar ChartKind = "bar"
	ChartPie ChartKind = "pie"
	// ChartGeneric plots the first column as labels against the first
	// numeric value found in each row.
	ChartGeneric ChartKind = "generic"
)
