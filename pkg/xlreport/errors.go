package xlreport

import (
	"fmt"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/xlerr"
)

// Error kinds, re-exported so callers only need this package for errors.Is.
var (
	ErrInvalidArgument = xlerr.ErrInvalidArgument
	ErrParse           = xlerr.ErrParse
	ErrConfiguration   = xlerr.ErrConfiguration
	ErrPrecondition    = xlerr.ErrPrecondition
	ErrIO              = xlerr.ErrIO
)

// Pipeline stages, as reported by StageError.
const (
	StageConfig    = "config"
	StageLoad      = "load"
	StageTransform = "transform"
	StageWrite     = "write"
	StageStyle     = "style"
	StageChart     = "chart"
	StageSave      = "save"
)

// StageError represents a failure in one stage of a report run.
type StageError struct {
	Stage string
	Sheet string // empty for workbook-wide stages
	Err   error
}

func (e *StageError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s sheet %q: %v", e.Stage, e.Sheet, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage, sheet string, err error) *StageError {
	return &StageError{
		Stage: stage,
		Sheet: sheet,
		Err:   err,
	}
}
