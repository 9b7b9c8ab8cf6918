package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/xlerr"
)

const utf8BOM = "\ufeff"

// LoadCSV reads a CSV file whose first record is the header row.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", xlerr.ErrIO, err)
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ReadCSV reads CSV data whose first record is the header row.
// Empty cells become missing values; other cells are parsed as numbers
// where possible and kept as strings otherwise.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 0

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return New()
	}
	if err != nil {
		return nil, csvError(err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	columns := make([]Column, len(header))
	for i, name := range header {
		columns[i].Name = name
	}

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}
		for i, cell := range record {
			columns[i].Values = append(columns[i].Values, parseValue(cell))
		}
	}

	return New(columns...)
}

func csvError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) && errors.Is(pe.Err, csv.ErrFieldCount) {
		return fmt.Errorf("%w: %v", xlerr.ErrInvalidArgument, err)
	}
	return fmt.Errorf("%w: %v", xlerr.ErrParse, err)
}

// parseValue attempts to parse a CSV cell as a number.
// Returns nil for empty and NaN cells, int64 for integers, float64 for
// decimals, or the original string.
func parseValue(s string) any {
	if s == "" {
		return nil
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(f) {
			return nil
		}
		return f
	}
	return s
}
