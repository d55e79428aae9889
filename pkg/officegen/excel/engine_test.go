package excel

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"github.com/nowaywastaken/AI-Office/pkg/officegen/ooxml"
)

func ptr[T any](v T) *T { return &v }

func reopen(t *testing.T, e *Engine) (*excelize.File, []byte) {
	t.Helper()
	data, err := e.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f, data
}

func cellStyle(t *testing.T, f *excelize.File, sheet, cell string) *excelize.Style {
	t.Helper()
	idx, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		t.Fatalf("GetCellStyle(%s) failed: %v", cell, err)
	}
	st, err := f.GetStyle(idx)
	if err != nil {
		t.Fatalf("GetStyle(%d) failed: %v", idx, err)
	}
	return st
}

func hasAllBorders(st *excelize.Style, styleIdx int) bool {
	sides := make(map[string]bool)
	for _, b := range st.Border {
		if b.Style == styleIdx {
			sides[b.Type] = true
		}
	}
	return sides["left"] && sides["top"] && sides["right"] && sides["bottom"]
}

func TestSanitizeSheetName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Budget", "Budget"},
		{"Q1/Q2: Plan?", "Q1_Q2_ Plan_"},
		{"[draft]*", "_draft__"},
		{"'quoted'", "quoted"},
		{strings.Repeat("x", 40), strings.Repeat("x", 31)},
		{strings.Repeat("表", 40), strings.Repeat("表", 31)},
		{"  padded  ", "padded"},
	}

	for _, tt := range tests {
		if result := SanitizeSheetName(tt.input); result != tt.expected {
			t.Errorf("SanitizeSheetName(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestSetSheetNameTruncates(t *testing.T) {
	title := "Quarterly Budget Summary For Fiscal 2025"
	if len(title) != 40 {
		t.Fatalf("fixture title has %d characters", len(title))
	}
	e := New(nil)
	if err := e.SetSheetName(title); err != nil {
		t.Fatalf("SetSheetName failed: %v", err)
	}
	if got := e.Sheet(); got != title[:31] {
		t.Errorf("Sheet() = %q, expected %q", got, title[:31])
	}
	f, _ := reopen(t, e)
	if diff := cmp.Diff([]string{title[:31]}, f.GetSheetList()); diff != "" {
		t.Errorf("sheet list mismatch (-want +got):\n%s", diff)
	}
}

func TestSheetCursor(t *testing.T) {
	e := New(nil)
	if err := e.SetSheetName("Summary"); err != nil {
		t.Fatalf("SetSheetName failed: %v", err)
	}
	name, err := e.AddSheet("Data")
	if err != nil {
		t.Fatalf("AddSheet failed: %v", err)
	}
	if name != "Data" || e.Sheet() != "Data" {
		t.Errorf("current sheet = %q, expected Data", e.Sheet())
	}
	if _, err := e.SetCell(1, 1, "on data", nil); err != nil {
		t.Fatalf("SetCell failed: %v", err)
	}
	if _, err := e.AddSheet("data"); err == nil {
		t.Error("expected duplicate sheet error")
	}
	if err := e.SelectSheet("Missing"); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("SelectSheet(Missing) error = %v, expected ErrSheetNotFound", err)
	}
	if err := e.SelectSheet("Summary"); err != nil {
		t.Fatalf("SelectSheet failed: %v", err)
	}
	if _, err := e.SetCell(1, 1, "on summary", nil); err != nil {
		t.Fatalf("SetCell failed: %v", err)
	}

	f, _ := reopen(t, e)
	for sheet, expected := range map[string]string{"Summary": "on summary", "Data": "on data"} {
		if got, _ := f.GetCellValue(sheet, "A1"); got != expected {
			t.Errorf("%s!A1 = %q, expected %q", sheet, got, expected)
		}
	}
}

func TestFormulaPlacement(t *testing.T) {
	e := New(nil)
	rows := [][]any{{"a", 1}, {"b", 2}, {"c", 3}, {"d", 4}, {"e", 5}}
	if err := e.SetDataRange(rows, 2, 1, false); err != nil {
		t.Fatalf("SetDataRange failed: %v", err)
	}
	if err := e.SetFormula(7, 2, "=SUM(B2:B6)"); err != nil {
		t.Fatalf("SetFormula failed: %v", err)
	}
	_, data := reopen(t, e)

	sheets, err := Inspect(data)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if len(sheets) != 1 {
		t.Fatalf("sheets = %d, expected 1", len(sheets))
	}
	if diff := cmp.Diff(map[string]string{"B7": "SUM(B2:B6)"}, sheets[0].Formulas); diff != "" {
		t.Errorf("formulas mismatch (-want +got):\n%s", diff)
	}
	expected := []CellRow{
		{R: 2, C: map[string]any{"A": "a", "B": int64(1)}},
		{R: 3, C: map[string]any{"A": "b", "B": int64(2)}},
		{R: 4, C: map[string]any{"A": "c", "B": int64(3)}},
		{R: 5, C: map[string]any{"A": "d", "B": int64(4)}},
		{R: 6, C: map[string]any{"A": "e", "B": int64(5)}},
	}
	if diff := cmp.Diff(expected, sheets[0].Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestSetCellFormulaString(t *testing.T) {
	e := New(nil)
	if _, err := e.SetCell(1, 1, 2, nil); err != nil {
		t.Fatalf("SetCell failed: %v", err)
	}
	cell, err := e.SetCell(1, 2, "=A1*2", nil)
	if err != nil {
		t.Fatalf("SetCell failed: %v", err)
	}
	if cell != "B1" {
		t.Errorf("SetCell returned %q, expected B1", cell)
	}
	if _, err := e.SetCell(0, 1, "bad", nil); err == nil {
		t.Error("expected error for row 0")
	}
	f, _ := reopen(t, e)
	formula, err := f.GetCellFormula(f.GetSheetName(0), "B1")
	if err != nil {
		t.Fatalf("GetCellFormula failed: %v", err)
	}
	if got := strings.TrimPrefix(formula, "="); got != "A1*2" {
		t.Errorf("formula = %q, expected A1*2", got)
	}
}

func TestHeaderAndBorders(t *testing.T) {
	e := New(nil)
	if err := e.SetRowData(1, []any{"Item", "Cost"}, 1, true); err != nil {
		t.Fatalf("SetRowData failed: %v", err)
	}
	if err := e.SetDataRange([][]any{{"Pens", 10}, {"Paper", 20}}, 2, 1, false); err != nil {
		t.Fatalf("SetDataRange failed: %v", err)
	}
	if err := e.AddBorders(1, 1, 3, 2, "thin"); err != nil {
		t.Fatalf("AddBorders failed: %v", err)
	}
	f, _ := reopen(t, e)
	sheet := f.GetSheetName(0)

	for _, cell := range []string{"A1", "B1"} {
		st := cellStyle(t, f, sheet, cell)
		if st.Font == nil || !st.Font.Bold {
			t.Errorf("%s should stay bold after borders", cell)
		}
		if !hasAllBorders(st, 1) {
			t.Errorf("%s missing thin borders: %+v", cell, st.Border)
		}
	}
	for _, cell := range []string{"A2", "B3"} {
		st := cellStyle(t, f, sheet, cell)
		if st.Font != nil && st.Font.Bold {
			t.Errorf("%s should not be bold", cell)
		}
		if !hasAllBorders(st, 1) {
			t.Errorf("%s missing thin borders: %+v", cell, st.Border)
		}
	}
	for _, cell := range []string{"C1", "A4"} {
		if st := cellStyle(t, f, sheet, cell); len(st.Border) != 0 {
			t.Errorf("%s outside the range has borders: %+v", cell, st.Border)
		}
	}
}

func TestBorderStyleFallback(t *testing.T) {
	e := New(nil)
	if err := e.AddBorders(2, 2, 1, 1, "wavy"); err != nil {
		t.Fatalf("AddBorders failed: %v", err)
	}
	f, _ := reopen(t, e)
	if st := cellStyle(t, f, f.GetSheetName(0), "A1"); !hasAllBorders(st, 1) {
		t.Errorf("unknown style should fall back to thin: %+v", st.Border)
	}
}

func TestCellStyle(t *testing.T) {
	e := New(nil)
	_, err := e.SetCell(1, 1, 1234.5, &CellStyle{
		FontName:     "Arial",
		FontSize:     ptr(14.0),
		Italic:       true,
		Color:        "#FF0000",
		BgColor:      "FFFF00",
		Alignment:    "center",
		NumberFormat: "#,##0.00",
	})
	if err != nil {
		t.Fatalf("SetCell failed: %v", err)
	}
	if _, err := e.SetCell(2, 1, "plain", &CellStyle{Color: "notacolor", Alignment: "sideways"}); err != nil {
		t.Fatalf("SetCell with invalid color failed: %v", err)
	}
	f, _ := reopen(t, e)
	sheet := f.GetSheetName(0)

	st := cellStyle(t, f, sheet, "A1")
	if st.Font == nil || st.Font.Family != "Arial" || st.Font.Size != 14 || !st.Font.Italic {
		t.Errorf("unexpected font: %+v", st.Font)
	}
	if !strings.HasSuffix(strings.ToUpper(st.Font.Color), "FF0000") {
		t.Errorf("font color = %q, expected FF0000", st.Font.Color)
	}
	if len(st.Fill.Color) == 0 || !strings.HasSuffix(strings.ToUpper(st.Fill.Color[0]), "FFFF00") {
		t.Errorf("fill = %+v, expected FFFF00", st.Fill)
	}
	if st.Alignment == nil || st.Alignment.Horizontal != "center" {
		t.Errorf("alignment = %+v, expected center", st.Alignment)
	}
	if st.CustomNumFmt == nil || *st.CustomNumFmt != "#,##0.00" {
		t.Errorf("number format = %v, expected #,##0.00", st.CustomNumFmt)
	}

	plain := cellStyle(t, f, sheet, "A2")
	if plain.Alignment == nil || plain.Alignment.Horizontal != "left" {
		t.Errorf("unknown alignment = %+v, expected left", plain.Alignment)
	}
	if got, _ := f.GetCellValue(sheet, "A2"); got != "plain" {
		t.Errorf("A2 = %q, expected plain", got)
	}
}

func TestAutoFitColumns(t *testing.T) {
	e := New(nil)
	values := []any{
		"id",
		"a much longer description value",
		strings.Repeat("w", 80),
		strings.Repeat("表", 20),
		struct{ X int }{1},
	}
	if err := e.SetRowData(1, values, 1, false); err != nil {
		t.Fatalf("SetRowData failed: %v", err)
	}
	if err := e.AutoFitColumns(DefaultMinColumnWidth, DefaultMaxColumnWidth); err != nil {
		t.Fatalf("AutoFitColumns failed: %v", err)
	}
	f, _ := reopen(t, e)
	sheet := f.GetSheetName(0)

	tests := []struct {
		col      string
		expected float64
	}{
		{"A", 10},
		{"B", 33},
		{"C", 50},
		{"D", 42},
	}
	for _, tt := range tests {
		got, err := f.GetColWidth(sheet, tt.col)
		if err != nil {
			t.Fatalf("GetColWidth(%s) failed: %v", tt.col, err)
		}
		if got != tt.expected {
			t.Errorf("column %s width = %v, expected %v", tt.col, got, tt.expected)
		}
	}
}

func TestColumnWidthAndRowHeight(t *testing.T) {
	e := New(nil)
	if err := e.SetColumnWidth(3, 24); err != nil {
		t.Fatalf("SetColumnWidth failed: %v", err)
	}
	if err := e.SetRowHeight(2, 30); err != nil {
		t.Fatalf("SetRowHeight failed: %v", err)
	}
	if err := e.SetColumnWidth(0, 10); err == nil {
		t.Error("expected error for column 0")
	}
	f, _ := reopen(t, e)
	sheet := f.GetSheetName(0)
	if w, _ := f.GetColWidth(sheet, "C"); w != 24 {
		t.Errorf("column C width = %v, expected 24", w)
	}
	if h, _ := f.GetRowHeight(sheet, 2); h != 30 {
		t.Errorf("row 2 height = %v, expected 30", h)
	}
}

func TestAddBarChart(t *testing.T) {
	e := New(nil)
	if err := e.SetSheetName("Q1 Budget"); err != nil {
		t.Fatalf("SetSheetName failed: %v", err)
	}
	_ = e.SetRowData(1, []any{"Item", "Cost", "Tax"}, 1, true)
	_ = e.SetDataRange([][]any{{"Pens", 10, 1}, {"Paper", 20, 2}}, 2, 1, false)

	if err := e.AddBarChart("A1:A3", "E2", "bad"); err == nil {
		t.Error("expected error for single-column range")
	}
	if err := e.AddBarChart("A1:C3", "E2", "Costs"); err != nil {
		t.Fatalf("AddBarChart failed: %v", err)
	}
	_, data := reopen(t, e)

	raw, err := ooxml.ReadPart(data, "xl/charts/chart1.xml")
	if err != nil {
		t.Fatalf("chart part missing: %v", err)
	}
	chart, err := xmlquery.Parse(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("parse chart: %v", err)
	}
	refs := make(map[string]bool)
	for _, f := range xmlquery.Find(chart, "//*[local-name()='f']") {
		refs[f.InnerText()] = true
	}
	for _, ref := range []string{"'Q1 Budget'!$B$2:$B$3", "'Q1 Budget'!$C$2:$C$3", "'Q1 Budget'!$A$2:$A$3"} {
		if !refs[ref] {
			t.Errorf("chart does not reference %s", ref)
		}
	}
	if !strings.Contains(chart.InnerText(), "Costs") {
		t.Error("chart title missing")
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"Item", 4},
		{"表格", 4},
		{"Ａ", 2},
		{"ｱ", 1},
		{"mix表", 5},
	}
	for _, tt := range tests {
		if result := DisplayWidth(tt.input); result != tt.expected {
			t.Errorf("DisplayWidth(%q) = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func TestFinalized(t *testing.T) {
	e := New(nil)
	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := e.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	if _, err := e.Bytes(); !errors.Is(err, ErrFinalized) {
		t.Errorf("Bytes after SaveAs error = %v, expected ErrFinalized", err)
	}
	if _, err := e.SetCell(1, 1, "late", nil); !errors.Is(err, ErrFinalized) {
		t.Errorf("SetCell after render error = %v, expected ErrFinalized", err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	_ = f.Close()
}
