package table

import (
	"fmt"
	"math"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/xlerr"
)

// snapEpsilon absorbs binary representation error in v*10^digits, e.g.
// 1.1*100 = 110.00000000000001, which would otherwise ceil to 111.
const snapEpsilon = 1e-9

// maxExactInt is 2^53, the magnitude above which float64 has no fraction bits.
const maxExactInt = 1 << 53

// CeilToDigits rounds every numeric value of the column up to digits
// fractional digits. A column holding only missing values is returned as is.
func CeilToDigits(t *Table, column string, digits int) (*Table, error) {
	j, err := t.lookup(column)
	if err != nil {
		return nil, err
	}
	if digits < 0 {
		return nil, fmt.Errorf("%w: negative digit count %d", xlerr.ErrInvalidArgument, digits)
	}
	if allMissing(t.columns[j].Values) {
		return t, nil
	}

	out := t.clone()
	values := out.columns[j].Values
	for i, v := range values {
		if v == nil {
			continue
		}
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("%w: column %q row %d: %v is not numeric",
				xlerr.ErrInvalidArgument, column, i+1, v)
		}
		values[i] = ceilDigits(f, digits)
	}
	return out, nil
}

func ceilDigits(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	p := math.Pow10(digits)
	scaled := v * p
	// Past 2^53 every float64 is integral: v has no digits left to round.
	if math.IsInf(p, 0) || math.IsInf(scaled, 0) || math.Abs(scaled) >= maxExactInt {
		return v
	}
	if r := math.Round(scaled); math.Abs(scaled-r) < snapEpsilon && r/p >= v {
		return r / p
	}
	return math.Ceil(scaled) / p
}

func allMissing(values []any) bool {
	for _, v := range values {
		if v == nil {
			continue
		}
		if f, ok := v.(float64); ok && math.IsNaN(f) {
			continue
		}
		return false
	}
	return true
}
