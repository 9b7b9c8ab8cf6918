package styler

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/width"
)

const (
	// MinColumnWidth is the natural width floor before padding.
	MinColumnWidth = 8
	// ColumnPadding is added to every computed width.
	ColumnPadding = 4
)

// AutoFitColumnWidths sets each column's width to
// max(widest rendered cell, MinColumnWidth) + ColumnPadding.
func (s *Styler) AutoFitColumnWidths() error {
	for _, sheet := range s.file.GetSheetList() {
		g, err := readGrid(s.file, sheet)
		if err != nil {
			return fmt.Errorf("sheet %q: %w", sheet, err)
		}
		for col := 1; col <= g.numCols(); col++ {
			name, err := excelize.ColumnNumberToName(col)
			if err != nil {
				return err
			}
			w := ColumnWidth(g.column(col))
			if err := s.file.SetColWidth(sheet, name, name, float64(w)); err != nil {
				return fmt.Errorf("sheet %q column %s: %w", sheet, name, err)
			}
		}
	}
	return nil
}

// ColumnWidth returns the width AutoFitColumnWidths gives a column holding values.
func ColumnWidth(values []string) int {
	widest := MinColumnWidth
	for _, v := range values {
		if w := DisplayWidth(v); w > widest {
			widest = w
		}
	}
	return widest + ColumnPadding
}

// DisplayWidth measures s in Shift_JIS bytes, so full-width Japanese
// characters count 2 and ASCII counts 1. Runes outside Shift_JIS count 2
// when East Asian wide or fullwidth and 1 otherwise.
func DisplayWidth(s string) int {
	enc := japanese.ShiftJIS.NewEncoder()
	if b, err := enc.String(s); err == nil {
		return len(b)
	}

	n := 0
	for _, r := range s {
		if b, err := enc.String(string(r)); err == nil {
			n += len(b)
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
