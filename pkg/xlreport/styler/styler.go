// Package styler mutates the presentation of an xlsx workbook in place:
// number formats, column widths and alignment. Cell values are never changed.
package styler

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/xlerr"
)

// Styler applies presentation changes to every sheet of a workbook.
// Style ids are derived from each cell's current style so changes compose,
// and derived ids are created only once per (base style, change).
type Styler struct {
	file  *excelize.File
	cache map[styleKey]int
}

type styleKey struct {
	base   int
	change string
}

// New creates a Styler bound to f. The Styler must not outlive f.
func New(f *excelize.File) *Styler {
	return &Styler{file: f, cache: make(map[styleKey]int)}
}

// File returns the workbook being styled.
func (s *Styler) File() *excelize.File { return s.file }

// SetNumberFormat gives every data cell under a header exactly equal to
// column a fixed-point format with digits fractional digits.
// Sheets without such a header are left untouched.
func (s *Styler) SetNumberFormat(column string, digits int) error {
	if digits < 0 {
		return fmt.Errorf("%w: negative digit count %d", xlerr.ErrInvalidArgument, digits)
	}
	code := FixedPointFormat(digits)
	return s.applyFormat(func(header string) bool { return header == column }, code)
}

// SetFormatByNameContains gives every data cell under a header containing
// substr the number format code.
func (s *Styler) SetFormatByNameContains(substr, code string) error {
	return s.applyFormat(func(header string) bool { return strings.Contains(header, substr) }, code)
}

// FixedPointFormat returns "0" followed by digits zeros after a decimal point.
func FixedPointFormat(digits int) string {
	if digits <= 0 {
		return "0"
	}
	return "0." + strings.Repeat("0", digits)
}

func (s *Styler) applyFormat(match func(header string) bool, code string) error {
	for _, sheet := range s.file.GetSheetList() {
		g, err := readGrid(s.file, sheet)
		if err != nil {
			return fmt.Errorf("sheet %q: %w", sheet, err)
		}

		// column membership is decided once per sheet from row 1
		var cols []int
		for col, header := range g.header() {
			if header != "" && match(header) {
				cols = append(cols, col+1)
			}
		}

		for _, col := range cols {
			for row := 2; row <= g.numRows(); row++ {
				if err := s.derive(sheet, col, row, "numfmt:"+code, func(st *excelize.Style) {
					st.CustomNumFmt = &code
				}); err != nil {
					return fmt.Errorf("sheet %q: %w", sheet, err)
				}
			}
		}
	}
	return nil
}

// CenterAlignAll centers every cell of every sheet horizontally and
// vertically, without text wrapping.
func (s *Styler) CenterAlignAll() error {
	for _, sheet := range s.file.GetSheetList() {
		g, err := readGrid(s.file, sheet)
		if err != nil {
			return fmt.Errorf("sheet %q: %w", sheet, err)
		}
		for row := 1; row <= g.numRows(); row++ {
			for col := 1; col <= g.numCols(); col++ {
				if err := s.derive(sheet, col, row, "align:center", centerAlignment); err != nil {
					return fmt.Errorf("sheet %q: %w", sheet, err)
				}
			}
		}
	}
	return nil
}

func centerAlignment(st *excelize.Style) {
	if st.Alignment == nil {
		st.Alignment = &excelize.Alignment{}
	}
	st.Alignment.Horizontal = "center"
	st.Alignment.Vertical = "center"
	st.Alignment.WrapText = false
}

// derive sets the cell's style to its current style with change applied.
func (s *Styler) derive(sheet string, col, row int, key string, change func(*excelize.Style)) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	base, err := s.file.GetCellStyle(sheet, cell)
	if err != nil {
		return fmt.Errorf("cell %s: %w", cell, err)
	}

	k := styleKey{base: base, change: key}
	id, ok := s.cache[k]
	if !ok {
		st, err := s.file.GetStyle(base)
		if err != nil {
			return fmt.Errorf("cell %s: style %d: %w", cell, base, err)
		}
		change(st)
		if id, err = s.file.NewStyle(st); err != nil {
			return fmt.Errorf("cell %s: %w", cell, err)
		}
		s.cache[k] = id
	}
	return s.file.SetCellStyle(sheet, cell, cell, id)
}
