// Package report renders settlement runs as fixed-width text tables for
// terminal output. It consumes SettlementResult values and never reaches
// into the pricing internals.
package report

import (
	"fmt"
	"io"
	"strings"
)

// Table is a fixed-width dashed text table.
type Table struct {
	Columns []string
	rows    [][]string
}

// NewTable creates a table with the given column headers.
func NewTable(cols ...string) *Table {
	return &Table{Columns: cols}
}

// AddRow appends one row; missing cells render empty, extras are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.Columns))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
	}
	t.rows = append(t.rows, row)
}

// Render writes the table with a dashed rule above and below the header
// and at the end.
func (t *Table) Render(w io.Writer) {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = len(c)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	formatRow := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		return strings.Join(parts, " | ")
	}

	header := formatRow(t.Columns)
	rule := strings.Repeat("-", len(header))

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, rule)
	for _, row := range t.rows {
		fmt.Fprintln(w, formatRow(row))
	}
	fmt.Fprintln(w, rule)
}
