// Package models defines the JSON shapes produced when inspecting a generated report.
package models

// WorkbookReport is the workbook-level container with per-sheet data.
type WorkbookReport struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists the sheets in workbook order.
	Sheets []SheetReport `json:"sheets"`
}
