package models

// Column describes the presentation of one worksheet column.
type Column struct {
	// Letter is the column name, e.g. "A".
	Letter string `json:"letter"`
	// Header is the row 1 value.
	Header string `json:"header"`
	// Width is the column width in characters.
	Width float64 `json:"width"`
	// NumberFormat is the display format of the first data cell.
	NumberFormat string `json:"number_format,omitempty"`
	// Alignment is "horizontal/vertical" of the first data cell, if set.
	Alignment string `json:"alignment,omitempty"`
}
