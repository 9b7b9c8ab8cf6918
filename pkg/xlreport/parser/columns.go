package parser

import (
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/models"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/styler"
)

// ExtractColumns describes every used column of a sheet: header, width and
// the number format and alignment of its first data cell.
func ExtractColumns(f *excelize.File, sheetName string) ([]models.Column, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	numCols := 0
	for _, row := range rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}

	sample := 1
	if len(rows) > 1 {
		sample = 2
	}

	result := make([]models.Column, 0, numCols)
	for col := 1; col <= numCols; col++ {
		letter, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return nil, err
		}
		width, err := f.GetColWidth(sheetName, letter)
		if err != nil {
			return nil, err
		}

		c := models.Column{Letter: letter, Width: width}
		if len(rows) > 0 && col-1 < len(rows[0]) {
			c.Header = rows[0][col-1]
		}

		cell, _ := excelize.CoordinatesToCellName(col, sample)
		if c.NumberFormat, err = styler.CellNumberFormat(f, sheetName, cell); err != nil {
			return nil, err
		}
		h, v, err := styler.CellAlignment(f, sheetName, cell)
		if err != nil {
			return nil, err
		}
		if h != "" || v != "" {
			c.Alignment = h + "/" + v
		}

		result = append(result, c)
	}

	return result, nil
}
