package xlreport

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/models"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/parser"
)

// Inspect reads back the presentation of a report: each sheet's used
// range, column widths and formats, and its embedded charts.
func Inspect(path string) (*models.WorkbookReport, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	// Charts require direct OOXML parsing
	charts, err := parser.ExtractCharts(path)
	if err != nil {
		return nil, fmt.Errorf("charts: %w", err)
	}

	report := &models.WorkbookReport{BookName: filepath.Base(path)}
	for _, name := range f.GetSheetList() {
		sheet := models.SheetReport{Name: name, Charts: charts[name]}

		if sheet.DataRange, err = parser.DataRange(f, name); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		if sheet.Rows, err = parser.LastDataRow(f, name); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		if sheet.Columns, err = parser.ExtractColumns(f, name); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		report.Sheets = append(report.Sheets, sheet)
	}
	return report, nil
}
