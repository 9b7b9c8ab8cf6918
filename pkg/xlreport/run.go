package xlreport

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/chart"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/locale"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/styler"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/table"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/writer"
)

type transformEnv struct {
	calendar locale.Calendar
}

// Run executes job: every sheet's CSV is loaded and transformed, the tables
// are written to job.Output, and the workbook is then styled, given its
// charts and saved again. A failure after the first write leaves the
// unstyled workbook at job.Output.
func Run(ctx context.Context, job *Job, opts Options) error {
	log := opts.logger()
	if job.Output == "" {
		return NewStageError(StageConfig, "", fmt.Errorf("%w: no output path", ErrConfiguration))
	}
	if err := job.Validate(); err != nil {
		return NewStageError(StageConfig, "", err)
	}

	env := &transformEnv{calendar: opts.Calendar}
	if env.calendar == nil && job.needsCalendar() {
		cal, err := locale.Lookup(job.locale())
		if err != nil {
			return NewStageError(StageConfig, "", err)
		}
		env.calendar = cal
	}

	tables := make([]*table.Table, 0, len(job.Sheets))
	names := make([]string, 0, len(job.Sheets))
	for _, s := range job.Sheets {
		if err := ctx.Err(); err != nil {
			return err
		}
		t, err := loadSheet(s, env, log)
		if err != nil {
			return err
		}
		tables = append(tables, t)
		names = append(names, s.Name)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(job.Output), 0o755); err != nil {
		return NewStageError(StageWrite, "", fmt.Errorf("%w: %v", ErrIO, err))
	}
	if err := writer.WriteTables(tables, names, job.Output); err != nil {
		return NewStageError(StageWrite, "", err)
	}
	log.Info("workbook written", "path", job.Output, "sheets", len(names))

	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := excelize.OpenFile(job.Output)
	if err != nil {
		return NewStageError(StageStyle, "", fmt.Errorf("%w: %v", ErrIO, err))
	}
	defer f.Close()

	if err := applyStyle(f, job.Style); err != nil {
		return NewStageError(StageStyle, "", err)
	}
	log.Debug("workbook styled")

	for _, s := range job.Sheets {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := addCharts(f, s); err != nil {
			return NewStageError(StageChart, s.Name, err)
		}
		if len(s.Charts) > 0 {
			log.Debug("charts added", "sheet", s.Name, "count", len(s.Charts))
		}
	}

	if err := writer.Save(f, job.Output); err != nil {
		return NewStageError(StageSave, "", err)
	}
	log.Info("report saved", "path", job.Output)
	return nil
}

func loadSheet(s SheetJob, env *transformEnv, log *slog.Logger) (*table.Table, error) {
	t, err := table.LoadCSV(s.Input)
	if err != nil {
		return nil, NewStageError(StageLoad, s.Name, err)
	}
	log.Debug("csv loaded", "sheet", s.Name, "input", s.Input, "rows", t.NumRows(), "cols", t.NumCols())

	for i, step := range s.Transform {
		t, err = step.apply(t, env)
		if err != nil {
			return nil, NewStageError(StageTransform, s.Name, fmt.Errorf("step %d: %w", i+1, err))
		}
	}
	return t, nil
}

func applyStyle(f *excelize.File, style StyleJob) error {
	st := styler.New(f)
	for _, r := range style.NumberFormats {
		if err := st.SetNumberFormat(r.Column, r.Digits); err != nil {
			return err
		}
	}
	for _, r := range style.Formats {
		if err := st.SetFormatByNameContains(r.Contains, r.Code); err != nil {
			return err
		}
	}
	if style.autoFit() {
		if err := st.AutoFitColumnWidths(); err != nil {
			return err
		}
	}
	if style.center() {
		if err := st.CenterAlignAll(); err != nil {
			return err
		}
	}
	return nil
}

func addCharts(f *excelize.File, s SheetJob) error {
	specs := make([]chart.Spec, len(s.Charts))
	for i, c := range s.Charts {
		xLabel := c.XLabel
		if xLabel == "" {
			xLabel = DefaultXLabel
		}
		specs[i] = chart.Spec{
			Title:   c.Title,
			YLabel:  c.YLabel,
			XLabel:  xLabel,
			Columns: c.Columns,
			Anchor:  c.Anchor,
			MinRow:  c.MinRow,
			MaxRow:  c.MaxRow,
			Scale:   c.Scale,
		}
	}
	for _, spec := range chart.Stack(specs, DefaultChartColumn, DefaultChartFirstRow, DefaultChartStep) {
		if err := chart.AddBarChart(f, s.Name, spec); err != nil {
			return err
		}
	}
	return nil
}
