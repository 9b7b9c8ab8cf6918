package styler

import "github.com/xuri/excelize/v2"

// grid is the raw (unformatted) cell text of a sheet's used range.
type grid struct {
	rows [][]string
	cols int
}

func readGrid(f *excelize.File, sheet string) (*grid, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	g := &grid{rows: rows}
	for _, row := range rows {
		if len(row) > g.cols {
			g.cols = len(row)
		}
	}
	return g, nil
}

func (g *grid) numRows() int { return len(g.rows) }

func (g *grid) numCols() int { return g.cols }

// header returns row 1.
func (g *grid) header() []string {
	if len(g.rows) == 0 {
		return nil
	}
	return g.rows[0]
}

// column returns the values of column col (1-based), "" for short rows.
func (g *grid) column(col int) []string {
	values := make([]string, len(g.rows))
	for i, row := range g.rows {
		if col-1 < len(row) {
			values[i] = row[col-1]
		}
	}
	return values
}
