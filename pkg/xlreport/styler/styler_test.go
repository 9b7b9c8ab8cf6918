package styler

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/xlerr"
)

// newReport builds a two-sheet workbook, saves it and reopens it, the way
// the pipeline styles an already written file.
func newReport(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "test"))
	require.NoError(t, f.SetSheetRow("test", "A1", &[]any{"date", "ape", "予測台数", "物単"}))
	require.NoError(t, f.SetSheetRow("test", "A2", &[]any{"2021-08-26", 0.1234, 12, 1.5}))
	require.NoError(t, f.SetSheetRow("test", "A3", &[]any{"2021-08-27", 0.5, 7, 2.25}))
	_, err := f.NewSheet("other")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("other", "A1", &[]any{"mape", "x"}))
	require.NoError(t, f.SetSheetRow("other", "A2", &[]any{0.2, "a"}))

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	f, err = excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func numFmt(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	code, err := CellNumberFormat(f, sheet, cell)
	require.NoError(t, err)
	return code
}

func TestSetFormatByNameContains(t *testing.T) {
	f := newReport(t)
	before, err := f.GetCellValue("test", "B2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)

	require.NoError(t, New(f).SetFormatByNameContains("ape", "0.00%"))

	assert.Equal(t, "0.00%", numFmt(t, f, "test", "B2"))
	assert.Equal(t, "0.00%", numFmt(t, f, "test", "B3"))
	assert.Equal(t, "0.00%", numFmt(t, f, "other", "A2"))
	// header and other columns are untouched
	assert.Equal(t, "General", numFmt(t, f, "test", "B1"))
	assert.Equal(t, "General", numFmt(t, f, "test", "C2"))

	// styling changes presentation only
	after, err := f.GetCellValue("test", "B2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, before, after)

	shown, err := f.GetCellValue("test", "B2")
	require.NoError(t, err)
	assert.Equal(t, "12.34%", shown)
}

func TestSetNumberFormat(t *testing.T) {
	f := newReport(t)
	require.NoError(t, New(f).SetNumberFormat("物単", 2))

	assert.Equal(t, "0.00", numFmt(t, f, "test", "D2"))
	assert.Equal(t, "0.00", numFmt(t, f, "test", "D3"))
	assert.Equal(t, "General", numFmt(t, f, "test", "B2"))

	require.NoError(t, New(f).SetNumberFormat("予測台数", 0))
	assert.Equal(t, "0", numFmt(t, f, "test", "C2"))
}

func TestSetNumberFormat_NegativeDigits(t *testing.T) {
	f := newReport(t)
	err := New(f).SetNumberFormat("物単", -1)
	assert.ErrorIs(t, err, xlerr.ErrInvalidArgument)
	assert.Equal(t, "General", numFmt(t, f, "test", "D2"))
}

func TestSetNumberFormat_UnknownColumnIsNoop(t *testing.T) {
	f := newReport(t)
	styles := func() map[string]int {
		m := make(map[string]int)
		for _, sheet := range f.GetSheetList() {
			rows, err := f.GetRows(sheet)
			require.NoError(t, err)
			for r, row := range rows {
				for c := range row {
					cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
					id, err := f.GetCellStyle(sheet, cell)
					require.NoError(t, err)
					m[sheet+"!"+cell] = id
				}
			}
		}
		return m
	}

	before := styles()
	require.NoError(t, New(f).SetNumberFormat("foo", 2))
	assert.Equal(t, before, styles())
}

func TestFormatsComposeWithAlignment(t *testing.T) {
	f := newReport(t)
	s := New(f)
	require.NoError(t, s.SetFormatByNameContains("ape", "0.00%"))
	require.NoError(t, s.CenterAlignAll())

	assert.Equal(t, "0.00%", numFmt(t, f, "test", "B2"))
	h, v, err := CellAlignment(f, "test", "B2")
	require.NoError(t, err)
	assert.Equal(t, "center", h)
	assert.Equal(t, "center", v)
}

func TestCenterAlignAll(t *testing.T) {
	f := newReport(t)
	s := New(f)
	require.NoError(t, s.CenterAlignAll())

	for _, ref := range []struct{ sheet, cell string }{
		{"test", "A1"}, {"test", "D3"}, {"test", "C2"}, {"other", "B2"},
	} {
		h, v, err := CellAlignment(f, ref.sheet, ref.cell)
		require.NoError(t, err)
		assert.Equal(t, "center", h, ref.cell)
		assert.Equal(t, "center", v, ref.cell)
	}

	// idempotent
	require.NoError(t, s.CenterAlignAll())
	require.NoError(t, New(f).CenterAlignAll())
	h, v, err := CellAlignment(f, "test", "A1")
	require.NoError(t, err)
	assert.Equal(t, "center", h)
	assert.Equal(t, "center", v)
	value, err := f.GetCellValue("test", "A1")
	require.NoError(t, err)
	assert.Equal(t, "date", value)
}

func TestAutoFitColumnWidths(t *testing.T) {
	f := newReport(t)
	require.NoError(t, New(f).AutoFitColumnWidths())

	tests := []struct {
		sheet, col string
		expected   float64
	}{
		{"test", "A", 14}, // "2021-08-26" = 10
		{"test", "B", 12}, // "0.1234" = 6 -> floor 8
		{"test", "C", 12}, // "予測台数" = 8
		{"test", "D", 12},
		{"other", "A", 12},
	}
	for _, tt := range tests {
		w, err := f.GetColWidth(tt.sheet, tt.col)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, w, "%s!%s", tt.sheet, tt.col)
	}
}

func TestColumnWidth(t *testing.T) {
	assert.Equal(t, 12, ColumnWidth([]string{"予測台数"}))
	assert.Equal(t, 12, ColumnWidth(nil))
	assert.Equal(t, 12, ColumnWidth([]string{"abc", ""}))
	assert.Equal(t, 24, ColumnWidth([]string{"予測対象日（指示日）"}))
	assert.Equal(t, 19, ColumnWidth([]string{"center_modified", "x"}))
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"abc", 3},
		{"予測", 4},
		{"ｱｲｳ", 3},           // half-width katakana is one byte in Shift_JIS
		{"2021-08-26（木）", 16}, // full-width parentheses are two bytes
		{"한국", 4},            // not in Shift_JIS, East Asian wide
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, DisplayWidth(tt.input), tt.input)
	}
}
