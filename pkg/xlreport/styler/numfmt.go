package styler

import "github.com/xuri/excelize/v2"

// builtInFormats covers the built-in number format ids a report uses.
var builtInFormats = map[int]string{
	0:  "General",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	9:  "0%",
	10: "0.00%",
	14: "mm-dd-yy",
	49: "@",
}

// CellNumberFormat returns the number format code displayed for cell.
func CellNumberFormat(f *excelize.File, sheet, cell string) (string, error) {
	id, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		return "", err
	}
	st, err := f.GetStyle(id)
	if err != nil {
		return "", err
	}
	if st.CustomNumFmt != nil {
		return *st.CustomNumFmt, nil
	}
	if code, ok := builtInFormats[st.NumFmt]; ok {
		return code, nil
	}
	return "General", nil
}

// CellAlignment returns the horizontal and vertical alignment of cell.
func CellAlignment(f *excelize.File, sheet, cell string) (horizontal, vertical string, err error) {
	id, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		return "", "", err
	}
	st, err := f.GetStyle(id)
	if err != nil {
		return "", "", err
	}
	if st.Alignment == nil {
		return "", "", nil
	}
	return st.Alignment.Horizontal, st.Alignment.Vertical, nil
}
