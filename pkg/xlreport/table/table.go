// Package table provides the in-memory tabular dataset and the pure value
// transformations applied to it before it is written to a workbook.
package table

import (
	"fmt"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/xlerr"
)

// Column is a named, ordered sequence of scalar values.
// A value is nil (missing), int64, float64, string, bool or time.Time.
type Column struct {
	Name   string
	Values []any
}

// Table is an ordered set of equally long columns with unique names.
type Table struct {
	columns []Column
	index   map[string]int
}

// New builds a table from columns, checking that names are unique and
// that every column has the same length.
func New(columns ...Column) (*Table, error) {
	t := &Table{
		columns: make([]Column, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for _, c := range columns {
		if _, dup := t.index[c.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate column name %q", xlerr.ErrInvalidArgument, c.Name)
		}
		if len(t.columns) > 0 && len(c.Values) != len(t.columns[0].Values) {
			return nil, fmt.Errorf("%w: column %q has %d values, expected %d",
				xlerr.ErrInvalidArgument, c.Name, len(c.Values), len(t.columns[0].Values))
		}
		t.index[c.Name] = len(t.columns)
		t.columns = append(t.columns, Column{Name: c.Name, Values: append([]any(nil), c.Values...)})
	}
	return t, nil
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.columns) }

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	if len(t.columns) == 0 {
		return 0
	}
	return len(t.columns[0].Values)
}

// Column returns a copy of the values of the named column.
func (t *Table) Column(name string) ([]any, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return append([]any(nil), t.columns[i].Values...), true
}

// Row returns the values of row i (0-based) in column order.
func (t *Table) Row(i int) []any {
	row := make([]any, len(t.columns))
	for j, c := range t.columns {
		row[j] = c.Values[i]
	}
	return row
}

// Value returns the value at row i (0-based) of the named column.
func (t *Table) Value(i int, name string) (any, bool) {
	j, ok := t.index[name]
	if !ok || i < 0 || i >= t.NumRows() {
		return nil, false
	}
	return t.columns[j].Values[i], true
}

// clone copies the column headers and value slices so the copy can be
// mutated without touching t.
func (t *Table) clone() *Table {
	c := &Table{
		columns: make([]Column, len(t.columns)),
		index:   make(map[string]int, len(t.index)),
	}
	for i, col := range t.columns {
		c.columns[i] = Column{Name: col.Name, Values: append([]any(nil), col.Values...)}
		c.index[col.Name] = i
	}
	return c
}

// lookup returns the column index of name or an ErrInvalidArgument.
func (t *Table) lookup(name string) (int, error) {
	i, ok := t.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: no such column %q", xlerr.ErrInvalidArgument, name)
	}
	return i, nil
}

// toFloat reports the numeric value of v, if it has one.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}
