package chart

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/models"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/parser"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/xlerr"
)

// newSheet writes a header and rows data rows of date/pred/actual.
func newSheet(t *testing.T, sheet string, rows int) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })
	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"日付", "予測物量", "実績"}))
	for i := 0; i < rows; i++ {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, f.SetSheetRow(sheet, cell, &[]any{fmt.Sprintf("2021-08-%02d", i+1), 100 + i, 90 + i}))
	}
	return f
}

func readCharts(t *testing.T, f *excelize.File, sheet string) []models.Chart {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.xlsx")
	require.NoError(t, f.SaveAs(path))
	charts, err := parser.ExtractCharts(path)
	require.NoError(t, err)
	return charts[sheet]
}

func TestAddBarChart_FixedRows(t *testing.T) {
	f := newSheet(t, "test", 10)
	require.NoError(t, AddBarChart(f, "test", Spec{
		Title:   "物量予測誤差の推移",
		YLabel:  "物量予測誤差",
		XLabel:  "日付",
		Columns: []int{2, 3},
		Anchor:  "Z10",
		MinRow:  1,
		MaxRow:  5,
	}))

	charts := readCharts(t, f, "test")
	require.Len(t, charts, 1)
	c := charts[0]
	assert.Equal(t, "Column", c.ChartType)
	assert.Equal(t, "物量予測誤差の推移", c.Title)
	assert.Equal(t, "物量予測誤差", c.YAxisTitle)
	assert.Equal(t, "日付", c.XAxisTitle)
	assert.Equal(t, "Z10", c.Anchor)

	require.Len(t, c.Series, 2)
	// rows 2..5: four categories, the title row excluded from the values
	assert.Equal(t, "'test'!$A$2:$A$5", c.Series[0].XRange)
	assert.Equal(t, "'test'!$B$2:$B$5", c.Series[0].YRange)
	assert.Contains(t, c.Series[0].NameRange, "$B$1")
	assert.Equal(t, "'test'!$A$2:$A$5", c.Series[1].XRange)
	assert.Equal(t, "'test'!$C$2:$C$5", c.Series[1].YRange)
	assert.Contains(t, c.Series[1].NameRange, "$C$1")
	assert.Equal(t, Palette[0], c.Series[0].Color)
	assert.Equal(t, Palette[1], c.Series[1].Color)
}

func TestAddBarChart_ComputedMaxRow(t *testing.T) {
	f := newSheet(t, "結果", 7)
	require.NoError(t, AddBarChart(f, "結果", Spec{Title: "t", Columns: []int{3}, Anchor: "E2"}))

	charts := readCharts(t, f, "結果")
	require.Len(t, charts, 1)
	require.Len(t, charts[0].Series, 1)
	assert.Equal(t, "'結果'!$A$2:$A$8", charts[0].Series[0].XRange)
	assert.Equal(t, "'結果'!$C$2:$C$8", charts[0].Series[0].YRange)
}

func TestAddBarChart_MultipleAnchors(t *testing.T) {
	f := newSheet(t, "test", 3)
	specs := Stack([]Spec{
		{Title: "a", Columns: []int{2}},
		{Title: "b", Columns: []int{3}},
		{Title: "c", Columns: []int{2, 3}, Anchor: "AB1"},
	}, "Z", 10, 30)
	for _, s := range specs {
		require.NoError(t, AddBarChart(f, "test", s))
	}

	charts := readCharts(t, f, "test")
	require.Len(t, charts, 3)
	anchors := map[string]string{}
	for _, c := range charts {
		anchors[c.Title] = c.Anchor
	}
	assert.Equal(t, map[string]string{"a": "Z10", "b": "Z40", "c": "AB1"}, anchors)
}

func TestAddBarChart_Errors(t *testing.T) {
	f := newSheet(t, "test", 3)

	err := AddBarChart(f, "test", Spec{Title: "t", Anchor: "Z10"})
	assert.ErrorIs(t, err, xlerr.ErrInvalidArgument)

	err = AddBarChart(f, "test", Spec{Title: "t", Columns: []int{2}, Anchor: "not-a-cell"})
	assert.ErrorIs(t, err, xlerr.ErrInvalidArgument)

	err = AddBarChart(f, "test", Spec{Title: "t", Columns: []int{0}, Anchor: "Z10"})
	assert.ErrorIs(t, err, xlerr.ErrInvalidArgument)

	empty := newSheet(t, "empty", 0)
	err = AddBarChart(empty, "empty", Spec{Title: "t", Columns: []int{2}, Anchor: "Z10"})
	assert.ErrorIs(t, err, xlerr.ErrInvalidArgument)
}

func TestStack(t *testing.T) {
	in := []Spec{{Title: "a"}, {Title: "b", Anchor: "A1"}, {Title: "c"}}
	out := Stack(in, "Z", 10, 30)
	assert.Equal(t, "Z10", out[0].Anchor)
	assert.Equal(t, "A1", out[1].Anchor)
	assert.Equal(t, "Z70", out[2].Anchor)
	// input is not modified
	assert.Empty(t, in[0].Anchor)
}

func TestRangeRefs(t *testing.T) {
	assert.Equal(t, "'a''b'", quoteSheet("a'b"))
	assert.Equal(t, "'s'!$AA$3", cellRef("'s'", 27, 3))
	assert.Equal(t, "'s'!$B$2:$B$9", rangeRef("'s'", 2, 2, 9))
}

func TestAddBarChart_PaletteWraps(t *testing.T) {
	f := newSheet(t, "test", 3)
	columns := make([]int, len(Palette)+1)
	for i := range columns {
		columns[i] = 2 + i%2
	}
	require.NoError(t, AddBarChart(f, "test", Spec{Title: "t", Columns: columns, Anchor: "Z10"}))

	charts := readCharts(t, f, "test")
	require.Len(t, charts, 1)
	require.Len(t, charts[0].Series, len(Palette)+1)
	for i, s := range charts[0].Series {
		assert.Equal(t, Palette[i%len(Palette)], s.Color, "series %d", i)
	}
}
