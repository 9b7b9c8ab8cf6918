// Package xlreport turns CSV tables into styled xlsx reports with embedded
// bar charts, and reads the presentation of such reports back.
package xlreport

import (
	"io"
	"log/slog"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/locale"
)

// Options configures a report run.
type Options struct {
	// Logger receives stage progress. If nil, logging is discarded.
	Logger *slog.Logger
	// Calendar renders weekdays for date steps.
	// If nil, it is looked up from Job.Locale when a date step is present.
	Calendar locale.Calendar
}

// DefaultOptions returns options that log nothing and resolve the calendar
// from the job.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
