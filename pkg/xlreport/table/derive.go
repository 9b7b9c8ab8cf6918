package table

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/xlerr"
)

// DeriveColumn evaluates expression once per row, with every column bound
// to a variable of the same name, and stores the results in column name
// (appended, or replaced when it already exists).
// Rows where evaluation fails and some value is missing yield a missing value.
func DeriveColumn(t *Table, name, expression string) (*Table, error) {
	program, err := expr.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("%w: compile expression %q: %v", xlerr.ErrInvalidArgument, expression, err)
	}

	values := make([]any, t.NumRows())
	env := make(map[string]any, len(t.columns))
	for i := range values {
		missing := false
		for _, c := range t.columns {
			env[c.Name] = c.Values[i]
			if c.Values[i] == nil {
				missing = true
			}
		}
		result, err := expr.Run(program, env)
		if err != nil {
			if missing {
				continue
			}
			return nil, fmt.Errorf("%w: evaluate %q at row %d: %v", xlerr.ErrInvalidArgument, expression, i+1, err)
		}
		values[i] = normalize(result)
	}

	out := t.clone()
	if j, ok := out.index[name]; ok {
		out.columns[j].Values = values
		return out, nil
	}
	out.index[name] = len(out.columns)
	out.columns = append(out.columns, Column{Name: name, Values: values})
	return out, nil
}

// normalize narrows expr results to the scalar types a Table holds.
func normalize(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case float32:
		return float64(n)
	}
	return v
}
