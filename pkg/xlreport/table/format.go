package table

import (
	"fmt"
	"math"
	"strings"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/xlerr"
)

// Display formats accepted by ConvertColumnFormat.
const (
	FormatPercent2 = "2%"
	FormatFixed2   = "2f"
)

var displayFormats = map[string]func(float64) string{
	FormatPercent2: func(v float64) string { return fmt.Sprintf("%.2f%%", v*100) },
	FormatFixed2:   func(v float64) string { return fmt.Sprintf("%.2f", v) },
}

// ConvertColumnFormat replaces the values of every column whose name
// contains substr with display strings rendered per format ("2%" or "2f").
// Columns that do not match are left untouched.
func ConvertColumnFormat(t *Table, substr, format string) (*Table, error) {
	render, ok := displayFormats[format]
	if !ok {
		return nil, fmt.Errorf("%w: no such convert format %q", xlerr.ErrInvalidArgument, format)
	}

	out := t.clone()
	for _, col := range out.columns {
		if !strings.Contains(col.Name, substr) {
			continue
		}
		for i, v := range col.Values {
			if v == nil {
				continue
			}
			f, ok := toFloat(v)
			if !ok {
				return nil, fmt.Errorf("%w: column %q row %d: %v is not numeric",
					xlerr.ErrInvalidArgument, col.Name, i+1, v)
			}
			if math.IsNaN(f) {
				col.Values[i] = nil
				continue
			}
			col.Values[i] = render(f)
		}
	}
	return out, nil
}
