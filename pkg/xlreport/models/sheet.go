package models

// SheetReport describes the presentation of a single sheet.
type SheetReport struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Rows is the number of rows in the used range, header included.
	Rows int `json:"rows"`
	// DataRange is the bounding range of non-empty cells (e.g. "A1:D10").
	DataRange string `json:"data_range,omitempty"`
	// Columns lists the used columns in order.
	Columns []Column `json:"columns,omitempty"`
	// Charts contains charts embedded in the sheet.
	Charts []Chart `json:"charts,omitempty"`
}
