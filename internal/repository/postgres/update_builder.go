package postgres

import (
	"fmt"
	"strings"
)

// updateBuilder assembles a sparse UPDATE statement: only columns that
// were explicitly set appear in the SET clause, so untouched fields
// keep their stored values.
type updateBuilder struct {
	table string
	cols  []string
	args  []any
}

func newUpdateBuilder(table string) *updateBuilder {
	return &updateBuilder{table: table}
}

func (b *updateBuilder) Set(column string, value any) {
	b.cols = append(b.cols, column)
	b.args = append(b.args, value)
}

func (b *updateBuilder) Empty() bool {
	return len(b.cols) == 0
}

// Build returns the statement and its ordered arguments, with the key
// predicate appended last.
func (b *updateBuilder) Build(keyColumn string, key any) (string, []any) {
	sets := make([]string, len(b.cols))
	for i, col := range b.cols {
		sets[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		b.table, strings.Join(sets, ", "), keyColumn, len(b.cols)+1)
	args := append(b.args, key)
	return query, args
}
