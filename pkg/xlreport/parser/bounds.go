package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// DataRange returns the range (e.g. "A1:D10") bounding the non-empty cells
// of a sheet, or "" for an empty sheet.
func DataRange(f *excelize.File, sheetName string) (string, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return "", err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return "", nil
	}

	startCell, _ := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	endCell, _ := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	return fmt.Sprintf("%s:%s", startCell, endCell), nil
}

// LastDataRow returns the 1-based index of the last row holding a
// non-empty cell, or 0 for an empty sheet.
func LastDataRow(f *excelize.File, sheetName string) (int, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return 0, err
	}
	_, maxRow, _, _ := findDataBounds(rows)
	return maxRow + 1, nil
}

// findDataBounds finds the bounding box of non-empty cells (0-based, -1 when none).
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
