package xlreport

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/table"
)

// Default chart placement when a chart has no anchor.
const (
	DefaultChartColumn   = "Z"
	DefaultChartFirstRow = 10
	DefaultChartStep     = 30
	DefaultXLabel        = "日付"
	DefaultLocale        = "ja"
)

// Job is a report run described in YAML.
type Job struct {
	// Output is the xlsx path written by the run.
	Output string `yaml:"output"`
	// Locale selects weekday names for date steps (default "ja").
	Locale string `yaml:"locale,omitempty"`
	// Sheets are written in order, one table per sheet.
	Sheets []SheetJob `yaml:"sheets"`
	// Style is applied to every sheet after writing.
	Style StyleJob `yaml:"style,omitempty"`
}

// SheetJob describes one input table and its sheet.
type SheetJob struct {
	Name      string          `yaml:"name"`
	Input     string          `yaml:"input"`
	Transform []TransformStep `yaml:"transform,omitempty"`
	Charts    []ChartJob      `yaml:"charts,omitempty"`
}

// TransformStep holds exactly one table transformation.
type TransformStep struct {
	Translate string      `yaml:"translate,omitempty"`
	Derive    *DeriveStep `yaml:"derive,omitempty"`
	Ceil      *CeilStep   `yaml:"ceil,omitempty"`
	Date      *DateStep   `yaml:"date,omitempty"`
	Format    *FormatStep `yaml:"format,omitempty"`
}

// DeriveStep adds a column computed by an expression over the row.
type DeriveStep struct {
	Name string `yaml:"name"`
	Expr string `yaml:"expr"`
}

// CeilStep rounds a column up to Digits fractional digits.
type CeilStep struct {
	Column string `yaml:"column"`
	Digits int    `yaml:"digits"`
}

// DateStep re-renders a date column parsed with a Go time layout.
type DateStep struct {
	Column string `yaml:"column"`
	Layout string `yaml:"layout"`
}

// FormatStep turns numeric columns into display strings ("2%" or "2f").
type FormatStep struct {
	Contains string `yaml:"contains"`
	Format   string `yaml:"format"`
}

// StyleJob lists the workbook styling passes.
type StyleJob struct {
	NumberFormats []NumberFormatRule `yaml:"number_formats,omitempty"`
	Formats       []FormatRule       `yaml:"formats,omitempty"`
	// AutoFit and Center default to true.
	AutoFit *bool `yaml:"auto_fit,omitempty"`
	Center  *bool `yaml:"center,omitempty"`
}

// NumberFormatRule gives the column named Column a fixed-point format.
type NumberFormatRule struct {
	Column string `yaml:"column"`
	Digits int    `yaml:"digits"`
}

// FormatRule gives columns whose header contains Contains the format Code.
type FormatRule struct {
	Contains string `yaml:"contains"`
	Code     string `yaml:"code"`
}

// ChartJob describes a bar chart on the sheet.
type ChartJob struct {
	Title   string  `yaml:"title"`
	YLabel  string  `yaml:"y_label,omitempty"`
	XLabel  string  `yaml:"x_label,omitempty"`
	Columns []int   `yaml:"columns"`
	Anchor  string  `yaml:"anchor,omitempty"`
	MinRow  int     `yaml:"min_row,omitempty"`
	MaxRow  int     `yaml:"max_row,omitempty"`
	Scale   float64 `yaml:"scale,omitempty"`
}

// LoadJob reads a job file. Relative input and output paths are resolved
// against the directory of the job file.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	job, err := ParseJob(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	base := filepath.Dir(path)
	for i := range job.Sheets {
		job.Sheets[i].Input = resolve(base, job.Sheets[i].Input)
	}
	job.Output = resolve(base, job.Output)
	return job, nil
}

// ParseJob decodes and validates a YAML job. Unknown keys are rejected.
func ParseJob(data []byte) (*Job, error) {
	var job Job
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&job); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return &job, nil
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// Validate checks the job for missing or contradictory settings.
func (j *Job) Validate() error {
	if len(j.Sheets) == 0 {
		return fmt.Errorf("%w: job has no sheets", ErrConfiguration)
	}
	seen := make(map[string]bool, len(j.Sheets))
	for i, s := range j.Sheets {
		if s.Name == "" {
			return fmt.Errorf("%w: sheet %d has no name", ErrConfiguration, i+1)
		}
		if seen[s.Name] {
			return fmt.Errorf("%w: duplicate sheet %q", ErrConfiguration, s.Name)
		}
		seen[s.Name] = true
		for k, step := range s.Transform {
			if n := step.count(); n != 1 {
				return fmt.Errorf("%w: sheet %q transform %d sets %d operations, expected 1",
					ErrConfiguration, s.Name, k+1, n)
			}
		}
		for _, c := range s.Charts {
			if len(c.Columns) == 0 {
				return fmt.Errorf("%w: sheet %q chart %q has no columns", ErrConfiguration, s.Name, c.Title)
			}
		}
	}
	return nil
}

func (s TransformStep) count() int {
	n := 0
	if s.Translate != "" {
		n++
	}
	for _, set := range []bool{s.Derive != nil, s.Ceil != nil, s.Date != nil, s.Format != nil} {
		if set {
			n++
		}
	}
	return n
}

// needsCalendar reports whether any sheet renders dates.
func (j *Job) needsCalendar() bool {
	for _, s := range j.Sheets {
		for _, step := range s.Transform {
			if step.Date != nil {
				return true
			}
		}
	}
	return false
}

func (j *Job) locale() string {
	if j.Locale == "" {
		return DefaultLocale
	}
	return j.Locale
}

func (s StyleJob) autoFit() bool { return s.AutoFit == nil || *s.AutoFit }

func (s StyleJob) center() bool { return s.Center == nil || *s.Center }

// apply runs the step against t.
func (s TransformStep) apply(t *table.Table, env *transformEnv) (*table.Table, error) {
	switch {
	case s.Translate != "":
		return table.TranslateColumnNames(t, s.Translate, nil)
	case s.Derive != nil:
		return table.DeriveColumn(t, s.Derive.Name, s.Derive.Expr)
	case s.Ceil != nil:
		return table.CeilToDigits(t, s.Ceil.Column, s.Ceil.Digits)
	case s.Date != nil:
		return table.ConvertDateFormat(t, s.Date.Column, s.Date.Layout, env.calendar)
	case s.Format != nil:
		return table.ConvertColumnFormat(t, s.Format.Contains, s.Format.Format)
	}
	return t, nil
}
