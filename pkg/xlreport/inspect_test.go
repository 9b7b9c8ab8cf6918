package xlreport

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/table"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/writer"
)

func TestInspect_UnstyledWorkbook(t *testing.T) {
	a, err := table.New(table.Column{Name: "x", Values: []any{int64(1), int64(2)}})
	require.NoError(t, err)
	b, err := table.New(table.Column{Name: "y"})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "plain.xlsx")
	require.NoError(t, writer.WriteTables([]*table.Table{a, b}, []string{"first", "second"}, path))

	report, err := Inspect(path)
	require.NoError(t, err)
	require.Len(t, report.Sheets, 2)

	assert.Equal(t, "first", report.Sheets[0].Name)
	assert.Equal(t, 3, report.Sheets[0].Rows)
	assert.Equal(t, "A1:A3", report.Sheets[0].DataRange)
	assert.Empty(t, report.Sheets[0].Charts)

	assert.Equal(t, "second", report.Sheets[1].Name)
	assert.Equal(t, 1, report.Sheets[1].Rows)
	require.Len(t, report.Sheets[1].Columns, 1)
	assert.Equal(t, "y", report.Sheets[1].Columns[0].Header)
	assert.Equal(t, "General", report.Sheets[1].Columns[0].NumberFormat)
}

func TestInspect_MissingFile(t *testing.T) {
	_, err := Inspect(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.ErrorIs(t, err, ErrIO)
}
