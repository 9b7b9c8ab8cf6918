package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/xlerr"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		tag      string
		expected language.Tag
	}{
		{"ja", language.Japanese},
		{"ja-JP", language.Japanese},
		{"ja_JP.UTF-8", language.Japanese},
		{"en", language.English},
		{"en_US.UTF-8", language.English},
	}

	for _, tt := range tests {
		cal, err := Lookup(tt.tag)
		require.NoError(t, err, tt.tag)
		assert.Equal(t, tt.expected, cal.Tag(), tt.tag)
	}
}

func TestLookup_Unavailable(t *testing.T) {
	for _, tag := range []string{"", "fr-FR", "not a tag!"} {
		_, err := Lookup(tag)
		assert.ErrorIs(t, err, xlerr.ErrConfiguration, tag)
	}
}

func TestShortWeekday(t *testing.T) {
	thursday := time.Date(2021, 8, 26, 0, 0, 0, 0, time.UTC).Weekday()
	assert.Equal(t, "木", Japanese.ShortWeekday(thursday))
	assert.Equal(t, "Thu", English.ShortWeekday(thursday))
	assert.Equal(t, "日", Japanese.ShortWeekday(time.Sunday))
}
