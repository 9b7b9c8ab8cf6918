package table

import (
	"fmt"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/xlerr"
)

// Translation directions accepted by TranslateColumnNames.
const (
	ToJapanese = "jp"
	ToEnglish  = "en"
)

// Dictionary is an immutable bijection between English and Japanese column names.
type Dictionary struct {
	en2jp map[string]string
	jp2en map[string]string
}

// NewDictionary builds a Dictionary from English->Japanese pairs.
// Two English names mapping to the same Japanese name is an error.
func NewDictionary(en2jp map[string]string) (*Dictionary, error) {
	d := &Dictionary{
		en2jp: make(map[string]string, len(en2jp)),
		jp2en: make(map[string]string, len(en2jp)),
	}
	for en, jp := range en2jp {
		if prev, dup := d.jp2en[jp]; dup {
			return nil, fmt.Errorf("%w: %q and %q both translate to %q",
				xlerr.ErrInvalidArgument, prev, en, jp)
		}
		d.en2jp[en] = jp
		d.jp2en[jp] = en
	}
	return d, nil
}

// Len returns the number of entries.
func (d *Dictionary) Len() int { return len(d.en2jp) }

// Translate returns the counterpart of name in the given direction and
// whether the dictionary knows it.
func (d *Dictionary) Translate(name, direction string) (string, bool) {
	var m map[string]string
	switch direction {
	case ToJapanese:
		m = d.en2jp
	case ToEnglish:
		m = d.jp2en
	}
	s, ok := m[name]
	return s, ok
}

var defaultDictionary = mustDictionary(map[string]string{
	"predict_exec_date":   "予測実施日",
	"predicted_date":      "予測対象日（指示日）",
	"predict_buttan":      "予測物量",
	"center_modified":     "センター修正値",
	"predict_num_tokusya": "予測台数",
})

func mustDictionary(m map[string]string) *Dictionary {
	d, err := NewDictionary(m)
	if err != nil {
		panic(err)
	}
	return d
}

// DefaultDictionary returns the built-in forecast report column names.
func DefaultDictionary() *Dictionary { return defaultDictionary }

// TranslateColumnNames renames the columns known to dict; direction is
// ToJapanese or ToEnglish. A nil dict means DefaultDictionary.
func TranslateColumnNames(t *Table, direction string, dict *Dictionary) (*Table, error) {
	if direction != ToJapanese && direction != ToEnglish {
		return nil, fmt.Errorf("%w: translation direction %q (must be %q or %q)",
			xlerr.ErrInvalidArgument, direction, ToJapanese, ToEnglish)
	}
	if dict == nil {
		dict = defaultDictionary
	}

	columns := make([]Column, len(t.columns))
	for i, c := range t.columns {
		columns[i] = c
		if name, ok := dict.Translate(c.Name, direction); ok {
			columns[i].Name = name
		}
	}
	return New(columns...)
}
