package table

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/locale"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/xlerr"
)

// OutputDateLayout is the date part of every rendered date; the weekday
// abbreviation follows it in full-width parentheses, e.g. 2021-08-26（木）.
const OutputDateLayout = "2006-01-02"

// ConvertDateFormat parses every value of column with the Go time layout
// inputLayout and re-renders it as OutputDateLayout plus the weekday
// abbreviation supplied by cal.
func ConvertDateFormat(t *Table, column, inputLayout string, cal locale.Calendar) (*Table, error) {
	if cal == nil {
		return nil, fmt.Errorf("%w: no calendar for weekday names", xlerr.ErrConfiguration)
	}
	j, err := t.lookup(column)
	if err != nil {
		return nil, err
	}

	out := t.clone()
	values := out.columns[j].Values
	for i, v := range values {
		var d time.Time
		switch x := v.(type) {
		case nil:
			continue
		case time.Time:
			d = x
		case string:
			d, err = time.Parse(inputLayout, strings.TrimSpace(x))
		case int64:
			// 20210826 read from CSV as a number
			d, err = time.Parse(inputLayout, strconv.FormatInt(x, 10))
		default:
			err = fmt.Errorf("unsupported value type %T", v)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: column %q row %d: %v does not match %q: %v",
				xlerr.ErrParse, column, i+1, v, inputLayout, err)
		}
		values[i] = FormatDate(d, cal)
	}
	return out, nil
}

// FormatDate renders d as e.g. "2021-08-26（木）".
func FormatDate(d time.Time, cal locale.Calendar) string {
	return d.Format(OutputDateLayout) + "（" + cal.ShortWeekday(d.Weekday()) + "）"
}
