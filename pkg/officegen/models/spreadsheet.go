package models

// Spreadsheet is the IR for a single-sheet workbook.
type Spreadsheet struct {
	// Title names the sheet (truncated to the format's sheet-name limit).
	Title string `json:"title"`
	// Headers is the optional header row, written bold at row 1.
	Headers []string `json:"headers"`
	// Rows holds scalar cell values: string, int64, float64, bool or nil.
	// Rows may differ in length; missing cells are left empty.
	Rows [][]any `json:"rows"`
	// Formulas maps A1-style cell references to formula text.
	Formulas map[string]string `json:"formulas,omitempty"`
}

// Width returns the number of columns spanned by the headers and the widest row.
func (s *Spreadsheet) Width() int {
	w := len(s.Headers)
	for _, row := range s.Rows {
		w = max(w, len(row))
	}
	return w
}
