// Package writer serializes tables into an xlsx workbook, one table per sheet.
package writer

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/table"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/xlerr"
)

// defaultSheet is the sheet excelize.NewFile creates.
const defaultSheet = "Sheet1"

// WriteTables writes each table to its own sheet, paired by position with
// sheetNames, and saves the workbook to path, replacing any existing file.
func WriteTables(tables []*table.Table, sheetNames []string, path string) error {
	f, err := Build(tables, sheetNames)
	if err != nil {
		return err
	}
	defer f.Close()

	return Save(f, path)
}

// Build creates the workbook WriteTables would save, in memory.
// Row 1 of each sheet holds the column names; data rows follow in order.
// Missing values, NaN and infinities are left as empty cells.
func Build(tables []*table.Table, sheetNames []string) (*excelize.File, error) {
	if len(tables) != len(sheetNames) {
		return nil, fmt.Errorf("%w: %d tables but %d sheet names",
			xlerr.ErrPrecondition, len(tables), len(sheetNames))
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("%w: no tables to write", xlerr.ErrPrecondition)
	}

	f := excelize.NewFile()
	for i, name := range sheetNames {
		if err := addSheet(f, i, name); err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: sheet %q: %v", xlerr.ErrInvalidArgument, name, err)
		}
		if err := writeTable(f, name, tables[i]); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

func addSheet(f *excelize.File, i int, name string) error {
	if i == 0 {
		return f.SetSheetName(defaultSheet, name)
	}
	if idx, _ := f.GetSheetIndex(name); idx != -1 {
		return fmt.Errorf("duplicate sheet name")
	}
	_, err := f.NewSheet(name)
	return err
}

func writeTable(f *excelize.File, sheet string, t *table.Table) error {
	names := t.Names()
	header := make([]any, len(names))
	for i, n := range names {
		header[i] = n
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i := 0; i < t.NumRows(); i++ {
		row := t.Row(i)
		for k, v := range row {
			if x, ok := v.(float64); ok && (math.IsNaN(x) || math.IsInf(x, 0)) {
				row[k] = nil
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	return nil
}

// Save writes f to path through a synced temporary file in the same
// directory, so readers never observe a partially written workbook.
func Save(f *excelize.File, path string) error {
	t, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(filepath.Dir(path)),
		renameio.WithStaticPermissions(0o644))
	if err != nil {
		return fmt.Errorf("%w: %v", xlerr.ErrIO, err)
	}
	defer t.Cleanup()

	if _, err := f.WriteTo(t); err != nil {
		return fmt.Errorf("%w: write %s: %v", xlerr.ErrIO, path, err)
	}
	if err := t.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("%w: replace %s: %v", xlerr.ErrIO, path, err)
	}
	return nil
}
