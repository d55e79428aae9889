// Package excel renders spreadsheets as SpreadsheetML (.xlsx) workbooks using excelize.
package excel

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf16"

	"github.com/xuri/excelize/v2"

	"github.com/nowaywastaken/AI-Office/pkg/officegen/output"
	"github.com/nowaywastaken/AI-Office/pkg/officegen/style"
)

// ErrSheetNotFound indicates a sheet name does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrFinalized is returned when an engine is used after its workbook was rendered.
var ErrFinalized = errors.New("workbook already rendered")

// Column auto-fit bounds in character widths.
const (
	DefaultMinColumnWidth = 10.0
	DefaultMaxColumnWidth = 50.0
)

// CellStyle is the optional formatting of one cell. Empty fields keep the current style.
type CellStyle struct {
	FontName     string
	FontSize     *float64
	Bold         bool
	Italic       bool
	Color        string
	BgColor      string
	Alignment    string
	NumberFormat string
}

// Engine builds one workbook. It tracks a current sheet cursor and is not safe for concurrent use.
type Engine struct {
	log   *slog.Logger
	f     *excelize.File
	sheet string
	// widths holds the widest measured value per sheet and column.
	widths map[string]map[int]int
	done   bool
}

// New returns an engine holding a workbook with one empty sheet selected.
func New(log *slog.Logger) *Engine {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	f := excelize.NewFile()
	return &Engine{
		log:    log,
		f:      f,
		sheet:  f.GetSheetName(0),
		widths: make(map[string]map[int]int),
	}
}

// Sheet returns the name of the current sheet.
func (e *Engine) Sheet() string {
	return e.sheet
}

// SanitizeSheetName replaces characters not allowed in sheet names with '_', strips
// surrounding apostrophes and truncates to the 31 character limit.
func SanitizeSheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	name = strings.Trim(name, "'")

	var b strings.Builder
	units := 0
	for _, r := range name {
		n := utf16.RuneLen(r)
		if n < 0 {
			n = 1
		}
		if units+n > excelize.MaxSheetNameLength {
			break
		}
		units += n
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), "'")
}

// SetSheetName renames the current sheet.
func (e *Engine) SetSheetName(name string) error {
	if e.done {
		return ErrFinalized
	}
	target := SanitizeSheetName(name)
	if target == "" {
		return fmt.Errorf("invalid sheet name %q", name)
	}
	if target == e.sheet {
		return nil
	}
	if err := e.f.SetSheetName(e.sheet, target); err != nil {
		return err
	}
	if w, ok := e.widths[e.sheet]; ok {
		e.widths[target] = w
		delete(e.widths, e.sheet)
	}
	e.sheet = target
	return nil
}

// AddSheet appends a sheet and makes it current. It returns the sanitised name.
func (e *Engine) AddSheet(name string) (string, error) {
	if e.done {
		return "", ErrFinalized
	}
	target := SanitizeSheetName(name)
	if target == "" {
		return "", fmt.Errorf("invalid sheet name %q", name)
	}
	if idx, _ := e.f.GetSheetIndex(target); idx >= 0 {
		return "", fmt.Errorf("sheet %q already exists", target)
	}
	idx, err := e.f.NewSheet(target)
	if err != nil {
		return "", err
	}
	e.f.SetActiveSheet(idx)
	e.sheet = target
	return target, nil
}

// SelectSheet makes an existing sheet current.
func (e *Engine) SelectSheet(name string) error {
	if e.done {
		return ErrFinalized
	}
	idx, err := e.f.GetSheetIndex(name)
	if err != nil || idx < 0 {
		return fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	e.sheet = e.f.GetSheetName(idx)
	e.f.SetActiveSheet(idx)
	return nil
}

// SetCell writes value at a one-based row and column and returns the cell name.
// Strings starting with '=' are written as formulas. A nil value leaves the cell empty.
func (e *Engine) SetCell(row, col int, value any, cs *CellStyle) (string, error) {
	if e.done {
		return "", ErrFinalized
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}

	if s, ok := value.(string); ok && strings.HasPrefix(s, "=") && len(s) > 1 {
		err = e.f.SetCellFormula(e.sheet, cell, s[1:])
	} else if value != nil {
		err = e.f.SetCellValue(e.sheet, cell, value)
	}
	if err != nil {
		return "", fmt.Errorf("set %s!%s: %w", e.sheet, cell, err)
	}
	e.measure(col, value)

	if cs != nil {
		if err := e.applyStyle(cell, cell, func(st *excelize.Style) { e.mergeCellStyle(st, cs) }); err != nil {
			return "", err
		}
	}
	return cell, nil
}

// SetFormula writes formula text verbatim at a one-based row and column. A leading '=' is optional.
func (e *Engine) SetFormula(row, col int, formula string) error {
	if e.done {
		return ErrFinalized
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	formula = strings.TrimPrefix(formula, "=")
	if err := e.f.SetCellFormula(e.sheet, cell, formula); err != nil {
		return fmt.Errorf("set formula %s!%s: %w", e.sheet, cell, err)
	}
	e.measure(col, "="+formula)
	return nil
}

// SetRowData writes values across one row starting at startCol. header bolds the row.
func (e *Engine) SetRowData(row int, values []any, startCol int, header bool) error {
	var cs *CellStyle
	if header {
		cs = &CellStyle{Bold: true}
	}
	for i, v := range values {
		if _, err := e.SetCell(row, startCol+i, v, cs); err != nil {
			return err
		}
	}
	return nil
}

// SetDataRange writes rows starting at startRow. header bolds only the first row of the range.
func (e *Engine) SetDataRange(rows [][]any, startRow, startCol int, header bool) error {
	for i, values := range rows {
		if err := e.SetRowData(startRow+i, values, startCol, header && i == 0); err != nil {
			return err
		}
	}
	return nil
}

// SetColumnWidth sets the width of a one-based column in characters.
func (e *Engine) SetColumnWidth(col int, width float64) error {
	if e.done {
		return ErrFinalized
	}
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return err
	}
	return e.f.SetColWidth(e.sheet, name, name, width)
}

// SetRowHeight sets the height of a one-based row in points.
func (e *Engine) SetRowHeight(row int, height float64) error {
	if e.done {
		return ErrFinalized
	}
	return e.f.SetRowHeight(e.sheet, row, height)
}

// AutoFitColumns sizes every measured column of the current sheet to
// clamp(widest value + 2, minWidth, maxWidth).
func (e *Engine) AutoFitColumns(minWidth, maxWidth float64) error {
	if e.done {
		return ErrFinalized
	}
	if maxWidth < minWidth {
		minWidth, maxWidth = maxWidth, minWidth
	}
	for col, widest := range e.widths[e.sheet] {
		width := min(max(float64(widest)+2, minWidth), maxWidth)
		if err := e.SetColumnWidth(col, width); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) measure(col int, value any) {
	text, ok := stringify(value)
	if !ok {
		return
	}
	cols := e.widths[e.sheet]
	if cols == nil {
		cols = make(map[int]int)
		e.widths[e.sheet] = cols
	}
	cols[col] = max(cols[col], DisplayWidth(text))
}

// mergeCellStyle folds cs into st. Invalid colours and unknown alignments are logged and skipped.
func (e *Engine) mergeCellStyle(st *excelize.Style, cs *CellStyle) {
	if st.Font == nil {
		st.Font = &excelize.Font{}
	}
	if cs.FontName != "" {
		st.Font.Family = cs.FontName
	}
	if cs.FontSize != nil && *cs.FontSize > 0 {
		st.Font.Size = *cs.FontSize
	}
	if cs.Bold {
		st.Font.Bold = true
	}
	if cs.Italic {
		st.Font.Italic = true
	}
	if hex, ok, err := style.ColorHex(cs.Color); err != nil {
		e.log.Warn("ignoring invalid font color", "color", cs.Color, "error", err)
	} else if ok {
		st.Font.Color = hex
	}
	if hex, ok, err := style.ColorHex(cs.BgColor); err != nil {
		e.log.Warn("ignoring invalid fill color", "color", cs.BgColor, "error", err)
	} else if ok {
		st.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hex}}
	}
	if cs.Alignment != "" {
		a, ok := style.LookupAlignment(cs.Alignment)
		if !ok {
			e.log.Warn("unknown alignment, using left", "alignment", cs.Alignment)
		}
		if st.Alignment == nil {
			st.Alignment = &excelize.Alignment{}
		}
		st.Alignment.Horizontal = a.String()
	}
	if cs.NumberFormat != "" {
		numFmt := cs.NumberFormat
		st.CustomNumFmt = &numFmt
	}
}

// applyStyle rewrites the style of every cell in a rectangle, starting from each cell's current style.
func (e *Engine) applyStyle(topLeft, bottomRight string, mutate func(*excelize.Style)) error {
	c1, r1, err := excelize.CellNameToCoordinates(topLeft)
	if err != nil {
		return err
	}
	c2, r2, err := excelize.CellNameToCoordinates(bottomRight)
	if err != nil {
		return err
	}
	for row := r1; row <= r2; row++ {
		for col := c1; col <= c2; col++ {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			var st excelize.Style
			idx, err := e.f.GetCellStyle(e.sheet, cell)
			if err != nil {
				return err
			}
			if idx != 0 {
				current, err := e.f.GetStyle(idx)
				if err != nil {
					return err
				}
				st = *current
			}
			mutate(&st)
			id, err := e.f.NewStyle(&st)
			if err != nil {
				return fmt.Errorf("style %s!%s: %w", e.sheet, cell, err)
			}
			if err := e.f.SetCellStyle(e.sheet, cell, cell, id); err != nil {
				return err
			}
		}
	}
	return nil
}

// Bytes renders the workbook. The engine cannot be used afterwards.
func (e *Engine) Bytes() ([]byte, error) {
	if e.done {
		return nil, ErrFinalized
	}
	e.done = true
	defer e.f.Close()
	buf, err := e.f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo renders the workbook to w. The engine cannot be used afterwards.
func (e *Engine) WriteTo(w io.Writer) (int64, error) {
	data, err := e.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// SaveAs renders the workbook to path. The engine cannot be used afterwards.
// A failed write leaves no file behind.
func (e *Engine) SaveAs(path string) error {
	data, err := e.Bytes()
	if err != nil {
		return err
	}
	return output.WriteFileAtomic(path, data, 0o644)
}
