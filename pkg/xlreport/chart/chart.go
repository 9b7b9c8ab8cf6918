// Package chart embeds clustered column ("bar") charts into report sheets.
package chart

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/parser"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/xlerr"
)

// CategoryColumn is the column holding the category (X axis) labels.
const CategoryColumn = 1

// Default chart geometry: base size in pixels, scaled by Spec.Scale.
const (
	BaseWidth    = 672
	BaseHeight   = 205
	DefaultScale = 2.5
)

// Palette is the series fill order of the built-in chart style 10
// (colorful, one accent per series) under the Office 2007 theme.
// Series beyond its length reuse it from the start.
var Palette = []string{"4F81BD", "C0504D", "9BBB59", "8064A2", "4BACC6", "F79646"}

// Spec describes one bar chart.
type Spec struct {
	Title  string
	YLabel string
	XLabel string
	// Columns are the 1-based column indices plotted as series.
	Columns []int
	// Anchor is the top-left cell of the chart, e.g. "Z10".
	Anchor string
	// MinRow holds the series titles; data starts at MinRow+1. Defaults to 1.
	MinRow int
	// MaxRow is the last data row. Zero means the last non-empty row of the sheet.
	MaxRow int
	// Scale multiplies BaseWidth and BaseHeight. Zero means DefaultScale.
	Scale float64
}

// AddBarChart adds a column-oriented bar chart built from spec to sheet.
// Row MinRow of each series column is the legend label; rows MinRow+1 to
// MaxRow are plotted against the labels of CategoryColumn. Overlapping
// anchors are not detected.
func AddBarChart(f *excelize.File, sheet string, spec Spec) error {
	if len(spec.Columns) == 0 {
		return fmt.Errorf("%w: chart %q has no series columns", xlerr.ErrInvalidArgument, spec.Title)
	}
	if _, _, err := excelize.CellNameToCoordinates(spec.Anchor); err != nil {
		return fmt.Errorf("%w: chart %q anchor %q: %v", xlerr.ErrInvalidArgument, spec.Title, spec.Anchor, err)
	}

	minRow, maxRow, err := rowBounds(f, sheet, spec)
	if err != nil {
		return err
	}

	ref := quoteSheet(sheet)
	categories := rangeRef(ref, CategoryColumn, minRow+1, maxRow)

	series := make([]excelize.ChartSeries, 0, len(spec.Columns))
	for i, col := range spec.Columns {
		if col < 1 {
			return fmt.Errorf("%w: chart %q series column %d", xlerr.ErrInvalidArgument, spec.Title, col)
		}
		series = append(series, excelize.ChartSeries{
			Name:       cellRef(ref, col, minRow),
			Categories: categories,
			Values:     rangeRef(ref, col, minRow+1, maxRow),
			Fill: excelize.Fill{
				Type:    "pattern",
				Pattern: 1,
				Color:   []string{Palette[i%len(Palette)]},
			},
		})
	}

	scale := spec.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	c := &excelize.Chart{
		Type:   excelize.Col,
		Series: series,
		Title:  []excelize.RichTextRun{{Text: spec.Title}},
		Legend: excelize.ChartLegend{Position: "right"},
		XAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: spec.XLabel}}},
		YAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: spec.YLabel}}},
		Dimension: excelize.ChartDimension{
			Width:  uint(BaseWidth * scale),
			Height: uint(BaseHeight * scale),
		},
	}
	if err := f.AddChart(sheet, spec.Anchor, c); err != nil {
		return fmt.Errorf("add chart %q to sheet %q: %w", spec.Title, sheet, err)
	}
	return nil
}

// rowBounds resolves MinRow and MaxRow, computing MaxRow from the sheet when unset.
func rowBounds(f *excelize.File, sheet string, spec Spec) (int, int, error) {
	minRow := spec.MinRow
	if minRow <= 0 {
		minRow = 1
	}
	maxRow := spec.MaxRow
	if maxRow <= 0 {
		last, err := parser.LastDataRow(f, sheet)
		if err != nil {
			return 0, 0, fmt.Errorf("sheet %q: %w", sheet, err)
		}
		maxRow = last
	}
	if maxRow <= minRow {
		return 0, 0, fmt.Errorf("%w: chart %q on sheet %q has no data rows after row %d",
			xlerr.ErrInvalidArgument, spec.Title, sheet, minRow)
	}
	return minRow, maxRow, nil
}

// Stack assigns anchors to specs that have none, stacking them down column
// from firstRow every step rows: Z10, Z40, Z70 for ("Z", 10, 30).
func Stack(specs []Spec, column string, firstRow, step int) []Spec {
	out := make([]Spec, len(specs))
	row := firstRow
	for i, s := range specs {
		if s.Anchor == "" {
			s.Anchor = column + strconv.Itoa(row)
		}
		out[i] = s
		row += step
	}
	return out
}

func quoteSheet(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}

func cellRef(sheetRef string, col, row int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return fmt.Sprintf("%s!$%s$%d", sheetRef, name, row)
}

func rangeRef(sheetRef string, col, fromRow, toRow int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return fmt.Sprintf("%s!$%s$%d:$%s$%d", sheetRef, name, fromRow, name, toRow)
}
