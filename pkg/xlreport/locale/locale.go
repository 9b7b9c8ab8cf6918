// Package locale supplies weekday names for date rendering without touching
// the process-wide locale.
package locale

import (
	"fmt"
	"time"

	"golang.org/x/text/language"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/xlerr"
)

// Calendar provides localized weekday abbreviations.
type Calendar interface {
	// Tag is the BCP 47 tag of the calendar's language.
	Tag() language.Tag
	// ShortWeekday returns the abbreviated name of d, e.g. "木" or "Thu".
	ShortWeekday(d time.Weekday) string
}

type weekdayTable struct {
	tag   language.Tag
	names [7]string
}

func (w weekdayTable) Tag() language.Tag { return w.tag }

func (w weekdayTable) ShortWeekday(d time.Weekday) string { return w.names[d] }

// Japanese is the calendar the reports are written in by default.
var Japanese Calendar = weekdayTable{
	tag:   language.Japanese,
	names: [7]string{"日", "月", "火", "水", "木", "金", "土"},
}

// English uses the abbreviations of time.Weekday.String.
var English Calendar = weekdayTable{
	tag:   language.English,
	names: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
}

var (
	calendars = []Calendar{Japanese, English}
	matcher   = language.NewMatcher([]language.Tag{language.Japanese, language.English})
)

// Lookup returns the built-in calendar matching tag (e.g. "ja", "ja_JP.UTF-8", "en-US").
// A tag that cannot be parsed or has no reasonable match is an ErrConfiguration.
func Lookup(tag string) (Calendar, error) {
	t, err := language.Parse(posixToBCP47(tag))
	if err != nil {
		return nil, fmt.Errorf("%w: locale %q: %v", xlerr.ErrConfiguration, tag, err)
	}
	_, index, confidence := matcher.Match(t)
	if confidence < language.High {
		return nil, fmt.Errorf("%w: locale %q is not available", xlerr.ErrConfiguration, tag)
	}
	return calendars[index], nil
}

// posixToBCP47 turns "ja_JP.UTF-8" into "ja-JP".
func posixToBCP47(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' || s[i] == '@' {
			s = s[:i]
			break
		}
	}
	b := []byte(s)
	for i, c := range b {
		if c == '_' {
			b[i] = '-'
		}
	}
	return string(b)
}
