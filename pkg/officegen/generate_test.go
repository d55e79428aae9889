package officegen

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"sync"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
	"github.com/zeebo/blake3"

	"github.com/nowaywastaken/AI-Office/pkg/officegen/excel"
	"github.com/nowaywastaken/AI-Office/pkg/officegen/models"
	"github.com/nowaywastaken/AI-Office/pkg/officegen/ooxml"
	"github.com/nowaywastaken/AI-Office/pkg/officegen/output"
	"github.com/nowaywastaken/AI-Office/pkg/officegen/style"
)

const budgetIR = `{
	"title": "Q1 Budget",
	"headers": ["Item", "Cost"],
	"rows": [["Pens", 10], ["Paper", 20]],
	"formulas": {"B4": "=SUM(B2:B3)"}
}`

func generate(t *testing.T, g *Generator, docType, ir string) *Result {
	t.Helper()
	res := g.Generate(context.Background(), docType, []byte(ir), "")
	if !res.Success {
		t.Fatalf("Generate(%s) failed: %s (%s)", docType, res.Error, res.ErrorKind)
	}
	return res
}

func parsePart(t *testing.T, container []byte, part string) *xmlquery.Node {
	t.Helper()
	raw, err := ooxml.ReadPart(container, part)
	if err != nil {
		t.Fatalf("ReadPart(%s) failed: %v", part, err)
	}
	doc, err := xmlquery.Parse(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("parse %s: %v", part, err)
	}
	return doc
}

func attr(n *xmlquery.Node, local string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func child(n *xmlquery.Node, local string) *xmlquery.Node {
	if n == nil {
		return nil
	}
	return xmlquery.FindOne(n, ".//*[local-name()='"+local+"']")
}

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func cellStyle(t *testing.T, f *excelize.File, sheet, cell string) *excelize.Style {
	t.Helper()
	idx, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		t.Fatalf("GetCellStyle(%s) failed: %v", cell, err)
	}
	if idx == 0 {
		return &excelize.Style{}
	}
	st, err := f.GetStyle(idx)
	if err != nil {
		t.Fatalf("GetStyle(%d) failed: %v", idx, err)
	}
	return st
}

func TestParseDocType(t *testing.T) {
	tests := []struct {
		input    string
		expected DocType
		wantErr  bool
	}{
		{"word", Word, false},
		{"DOCX", Word, false},
		{"excel", Excel, false},
		{".xlsx", Excel, false},
		{"ppt", PPT, false},
		{" pptx ", PPT, false},
		{"pdf", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDocType(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDocType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrUnknownDocumentType) {
			t.Errorf("ParseDocType(%q) error = %v, expected ErrUnknownDocumentType", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("ParseDocType(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}

	for _, dt := range DocTypes {
		if dt.Extension() == "" || dt.Label() == string(dt) {
			t.Errorf("%s has no extension or label", dt)
		}
	}
}

func TestGenerateUnknownType(t *testing.T) {
	sink := output.NewMemorySink()
	g := New(Options{Sink: sink})

	res := g.Generate(context.Background(), "pdf", []byte(`not even json`), "x")
	if res.Success {
		t.Fatal("expected failure")
	}
	if res.ErrorKind != KindUnknownDocumentType || !errors.Is(res.Err, ErrUnknownDocumentType) {
		t.Errorf("kind = %q, err = %v", res.ErrorKind, res.Err)
	}
	if res.DocType != "" || res.Content != nil {
		t.Errorf("unexpected output in failed result: %+v", res)
	}
	if names := sink.Names(); len(names) != 0 {
		t.Errorf("sink received %v", names)
	}
}

func TestGenerateInvalidStructure(t *testing.T) {
	tests := []struct {
		docType string
		ir      string
		field   string
	}{
		{"word", `{"title": "x"}`, "sections"},
		{"word", `{"sections": [{"heading": "h"}]}`, "sections[0].content"},
		{"excel", `{"headers": ["a"]}`, "rows"},
		{"ppt", `{"slides": [{"content": {"a": 1}}]}`, "slides[0].content"},
		{"ppt", `[]`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.docType+"/"+tt.field, func(t *testing.T) {
			sink := output.NewMemorySink()
			res := New(Options{Sink: sink}).Generate(context.Background(), tt.docType, []byte(tt.ir), "")
			if res.Success || res.ErrorKind != KindInvalidStructure {
				t.Fatalf("expected InvalidStructure, got success=%v kind=%q", res.Success, res.ErrorKind)
			}
			var se *models.StructureError
			if !errors.As(res.Err, &se) {
				t.Fatalf("expected *models.StructureError, got %T", res.Err)
			}
			if se.Field != tt.field {
				t.Errorf("Field = %q, expected %q", se.Field, tt.field)
			}
			if len(sink.Names()) != 0 {
				t.Error("invalid IR must not produce output")
			}
		})
	}
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := New(Options{}).Generate(ctx, "excel", []byte(budgetIR), "")
	if res.Success || res.ErrorKind != KindCanceled {
		t.Errorf("expected Canceled, got success=%v kind=%q", res.Success, res.ErrorKind)
	}
}

func TestBudgetSpreadsheet(t *testing.T) {
	res := generate(t, New(Options{}), "excel", budgetIR)
	if res.Title != "Q1 Budget" || !strings.HasSuffix(res.FileName, ".xlsx") {
		t.Errorf("title = %q, file name = %q", res.Title, res.FileName)
	}
	f := openWorkbook(t, res.Content)
	const sheet = "Q1 Budget"
	if diff := cmp.Diff([]string{sheet}, f.GetSheetList()); diff != "" {
		t.Fatalf("sheets mismatch (-want +got):\n%s", diff)
	}

	for _, cell := range []string{"A1", "B1"} {
		st := cellStyle(t, f, sheet, cell)
		if st.Font == nil || !st.Font.Bold {
			t.Errorf("header %s is not bold", cell)
		}
	}
	for _, cell := range []string{"A2", "B3"} {
		if st := cellStyle(t, f, sheet, cell); st.Font != nil && st.Font.Bold {
			t.Errorf("data cell %s is bold", cell)
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	expected := [][]string{{"Item", "Cost"}, {"Pens", "10"}, {"Paper", "20"}}
	if diff := cmp.Diff(expected, rows[:3]); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}

	formula, err := f.GetCellFormula(sheet, "B4")
	if err != nil {
		t.Fatalf("GetCellFormula failed: %v", err)
	}
	if formula != "SUM(B2:B3)" {
		t.Errorf("B4 formula = %q, expected SUM(B2:B3)", formula)
	}

	for _, cell := range []string{"A1", "B1", "A2", "B2", "A3", "B3"} {
		if n := len(cellStyle(t, f, sheet, cell).Border); n != 4 {
			t.Errorf("%s has %d borders, expected 4", cell, n)
		}
	}
	for _, cell := range []string{"A4", "B4", "C1"} {
		if n := len(cellStyle(t, f, sheet, cell).Border); n != 0 {
			t.Errorf("%s outside the table has %d borders", cell, n)
		}
	}
}

func TestFormulaPlacement(t *testing.T) {
	ir := `{
		"title": "Scores",
		"rows": [["a", 1], ["b", 2], ["c", 3], ["d", 4], ["e", 5]],
		"formulas": {"B7": "=SUM(B2:B6)", "7B": "=1", "ZZZZ1": "=2", "": "=3"}
	}`
	res := generate(t, New(Options{}), "excel", ir)

	sheets, err := excel.Inspect(res.Content)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if len(sheets) != 1 {
		t.Fatalf("sheets = %d, expected 1", len(sheets))
	}
	if diff := cmp.Diff(map[string]string{"B7": "SUM(B2:B6)"}, sheets[0].Formulas); diff != "" {
		t.Errorf("formulas mismatch (-want +got):\n%s", diff)
	}
	for _, row := range sheets[0].Rows {
		if row.R == 1 || row.R > 7 {
			t.Errorf("unexpected data in row %d: %v", row.R, row.C)
		}
	}
}

func TestSheetTitleTruncated(t *testing.T) {
	title := "Quarterly Budget Summary For Fiscal 2025"
	if len(title) != 40 {
		t.Fatalf("fixture title has %d characters", len(title))
	}
	res := generate(t, New(Options{}), "excel", fmt.Sprintf(`{"title": %q, "rows": [["x"]]}`, title))
	f := openWorkbook(t, res.Content)
	name := f.GetSheetName(0)
	if name != title[:31] {
		t.Errorf("sheet name = %q (%d chars), expected %q", name, len(name), title[:31])
	}
	if res.Title != title {
		t.Errorf("result title = %q, expected the full title", res.Title)
	}
}

func TestWordHeadingOrder(t *testing.T) {
	ir := `{
		"title": "Plan",
		"sections": [
			{"heading": "Goals", "content": "Grow.", "level": 1},
			{"content": "Untitled body."},
			{"heading": "Risks", "content": "Few.", "level": 3}
		]
	}`
	res := generate(t, New(Options{}), "word", ir)
	doc := parsePart(t, res.Content, "word/document.xml")

	type block struct{ Style, Text string }
	var got []block
	for _, p := range xmlquery.Find(doc, "//*[local-name()='body']/*[local-name()='p']") {
		got = append(got, block{attr(child(p, "pStyle"), "val"), p.InnerText()})
	}
	expected := []block{
		{"Heading1", "Plan"},
		{"Heading1", "Goals"},
		{"", "Grow."},
		{"", "Untitled body."},
		{"Heading3", "Risks"},
		{"", "Few."},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("block order mismatch (-want +got):\n%s", diff)
	}
}

func TestWordStyleGuide(t *testing.T) {
	tests := []struct {
		name       string
		ir         string
		left, top  string
		font, size string
		line       string
	}{
		{"defaults", `{"sections": [{"content": "x"}]}`, "1803", "1440", "Arial", "24", "360"},
		{"guide without margin", `{"style_guide": {"font_name": "Georgia"}, "sections": [{"content": "x"}]}`, "1440", "1440", "Georgia", "24", "360"},
		{"guide with margin", `{"style": {"margin": 2, "font_size": 10, "line_spacing": 2}, "sections": [{"content": "x"}]}`, "1134", "1134", "Arial", "20", "480"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := generate(t, New(Options{}), "word", tt.ir)
			doc := parsePart(t, res.Content, "word/document.xml")
			mar := child(doc, "pgMar")
			if attr(mar, "left") != tt.left || attr(mar, "top") != tt.top {
				t.Errorf("margins left=%s top=%s, expected %s/%s", attr(mar, "left"), attr(mar, "top"), tt.left, tt.top)
			}
			body := xmlquery.Find(doc, "//*[local-name()='body']/*[local-name()='p']")[1]
			if got := attr(child(body, "rFonts"), "ascii"); got != tt.font {
				t.Errorf("font = %q, expected %q", got, tt.font)
			}
			if got := attr(child(body, "sz"), "val"); got != tt.size {
				t.Errorf("size = %q, expected %q", got, tt.size)
			}
			if got := attr(child(body, "spacing"), "line"); got != tt.line {
				t.Errorf("line = %q, expected %q", got, tt.line)
			}
			if got := attr(child(body, "spacing"), "after"); got != "240" {
				t.Errorf("space after = %q, expected 240", got)
			}
		})
	}
}

func TestInvalidColorStillRenders(t *testing.T) {
	ir := `{"title": "T", "sections": [{"content": "Colored", "style": {"color": "notacolor", "bold": true}}]}`
	res := generate(t, New(Options{}), "word", ir)
	doc := parsePart(t, res.Content, "word/document.xml")

	p := xmlquery.Find(doc, "//*[local-name()='body']/*[local-name()='p']")[1]
	if p.InnerText() != "Colored" {
		t.Fatalf("paragraph text = %q", p.InnerText())
	}
	if child(p, "color") != nil {
		t.Error("invalid color should leave the default text color")
	}
	if child(p, "b") == nil {
		t.Error("valid style attributes should still apply")
	}
}

func TestNegativeMarginFails(t *testing.T) {
	sink := output.NewMemorySink()
	res := New(Options{Sink: sink}).Generate(context.Background(), "word",
		[]byte(`{"style_guide": {"margin": -1}, "sections": []}`), "")
	if res.Success || res.ErrorKind != KindRenderFailure {
		t.Fatalf("expected RenderFailure, got success=%v kind=%q", res.Success, res.ErrorKind)
	}
	var re *RenderError
	if !errors.As(res.Err, &re) || re.DocType != Word || re.Component != "page" {
		t.Errorf("err = %v", res.Err)
	}
	if len(sink.Names()) != 0 {
		t.Error("failed render must not leave output")
	}
}

func TestOutOfRangeStyleFails(t *testing.T) {
	tests := []struct {
		name      string
		ir        string
		component string
	}{
		{"huge font size", `{"style": {"font_size": 100000}, "sections": [{"content": "x"}]}`, "paragraph"},
		{"zero font size", `{"style": {"font_size": 0}, "sections": [{"content": "x"}]}`, "paragraph"},
		{"huge line spacing", `{"style": {"line_spacing": 1e300}, "sections": [{"content": "x"}]}`, "paragraph"},
		{"huge space after", `{"sections": [{"content": "x", "style": {"space_after": 1e12}}]}`, "paragraph"},
		{"huge indent", `{"sections": [{"content": "x", "style": {"first_line_indent": -1e6}}]}`, "paragraph"},
		{"huge margin", `{"style": {"margin": 1e9}, "sections": []}`, "page"},
		{"margins wider than page", `{"style": {"margin": 15}, "sections": []}`, "page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := output.NewMemorySink()
			res := New(Options{Sink: sink}).Generate(context.Background(), "word", []byte(tt.ir), "")
			if res.Success || res.ErrorKind != KindRenderFailure {
				t.Fatalf("expected RenderFailure, got success=%v kind=%q", res.Success, res.ErrorKind)
			}
			var re *RenderError
			if !errors.As(res.Err, &re) || re.Component != tt.component {
				t.Errorf("err = %v, expected component %q", res.Err, tt.component)
			}
			if !errors.Is(res.Err, style.ErrOutOfRange) {
				t.Errorf("err = %v, expected ErrOutOfRange", res.Err)
			}
			if len(sink.Names()) != 0 {
				t.Error("failed render must not leave output")
			}
		})
	}
}

type deckSlide struct {
	Layout   string
	Title    string
	Subtitle string
	Body     []string
}

func readDeck(t *testing.T, data []byte) []deckSlide {
	t.Helper()
	names, err := ooxml.PartNames(data)
	if err != nil {
		t.Fatalf("PartNames failed: %v", err)
	}
	count := 0
	for _, name := range names {
		if path.Dir(name) == "ppt/slides" {
			count++
		}
	}

	slides := make([]deckSlide, 0, count)
	for i := 1; i <= count; i++ {
		var s deckSlide
		rels := parsePart(t, data, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i))
		for _, rel := range xmlquery.Find(rels, "//*[local-name()='Relationship']") {
			if rel.SelectAttr("Type") == ooxml.RelSlideLayout {
				s.Layout = path.Base(rel.SelectAttr("Target"))
			}
		}
		doc := parsePart(t, data, fmt.Sprintf("ppt/slides/slide%d.xml", i))
		for _, sp := range xmlquery.Find(doc, "//*[local-name()='sp']") {
			ph := child(sp, "ph")
			switch attr(ph, "type") {
			case "title", "ctrTitle":
				s.Title = sp.InnerText()
			case "subTitle":
				s.Subtitle = sp.InnerText()
			case "":
				for _, p := range xmlquery.Find(sp, ".//*[local-name()='txBody']/*[local-name()='p']") {
					s.Body = append(s.Body, p.InnerText())
				}
			}
		}
		slides = append(slides, s)
	}
	return slides
}

func TestDeckTitleSlidePolicy(t *testing.T) {
	tests := []struct {
		name     string
		ir       string
		expected []deckSlide
	}{
		{
			name: "leading title slide is folded in",
			ir: `{"title": "Deck", "slides": [
				{"kind": "title", "title": "Ignored", "content": ["Welcome"]},
				{"kind": "content", "title": "Agenda", "content": ["One", "Two"]},
				{"type": "title", "title": "Part 2", "content": ["Details"]},
				{"kind": "two-column", "title": "", "content": "Single line"}
			]}`,
			expected: []deckSlide{
				{Layout: "slideLayout1.xml", Title: "Deck", Subtitle: "Welcome"},
				{Layout: "slideLayout2.xml", Title: "Agenda", Body: []string{"One", "Two"}},
				{Layout: "slideLayout1.xml", Title: "Part 2", Subtitle: "Details"},
				{Layout: "slideLayout2.xml", Title: DefaultSlideTitle, Body: []string{"Single line"}},
			},
		},
		{
			name: "leading content slide is kept",
			ir: `{"title": "Deck", "subtitle": "Sub", "slides": [
				{"title": "First", "content": ["a"]}
			]}`,
			expected: []deckSlide{
				{Layout: "slideLayout1.xml", Title: "Deck", Subtitle: "Sub"},
				{Layout: "slideLayout2.xml", Title: "First", Body: []string{"a"}},
			},
		},
		{
			name: "title from first slide and default subtitle",
			ir:   `{"slides": [{"kind": "title", "title": "From Slide"}]}`,
			expected: []deckSlide{
				{Layout: "slideLayout1.xml", Title: "From Slide", Subtitle: "Generated by AI Office Suite"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := generate(t, New(Options{}), "ppt", tt.ir)
			if diff := cmp.Diff(tt.expected, readDeck(t, res.Content)); diff != "" {
				t.Errorf("deck mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFallbackTitles(t *testing.T) {
	g := New(Options{})
	res := g.Generate(context.Background(), "ppt", []byte(`{"slides": []}`), "Caller Title")
	if res.Title != "Caller Title" {
		t.Errorf("title = %q, expected caller fallback", res.Title)
	}
	res = g.Generate(context.Background(), "word", []byte(`{"sections": []}`), "")
	if res.Title != "Generated Document" {
		t.Errorf("title = %q, expected configured fallback", res.Title)
	}
}

func TestGenerateToDirectory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputDir = t.TempDir()
	g := New(Options{Config: &cfg})

	res := generate(t, g, "docx", `{"title": "Memo", "sections": [{"content": "Hello"}]}`)
	if res.DocType != Word || res.FileName != res.ID+".docx" {
		t.Errorf("doc type = %q, file name = %q", res.DocType, res.FileName)
	}
	data, err := os.ReadFile(res.FilePath)
	if err != nil {
		t.Fatalf("read %s: %v", res.FilePath, err)
	}
	if !bytes.Equal(data, res.Content) {
		t.Error("stored file differs from in-memory content")
	}
	sum := blake3.Sum256(data)
	if res.Digest != hex.EncodeToString(sum[:]) {
		t.Errorf("digest = %s", res.Digest)
	}
	echo, ok := res.Structure.(*models.TextDocument)
	if !ok || echo.Title != "Memo" || len(echo.Sections) != 1 {
		t.Errorf("structure = %#v", res.Structure)
	}
	if !strings.Contains(res.Message, "Memo") {
		t.Errorf("message = %q", res.Message)
	}
}

func TestDeterministicContent(t *testing.T) {
	g := New(Options{})
	for _, tt := range []struct{ docType, ir string }{
		{"word", `{"title": "Same", "sections": [{"heading": "H", "content": "C"}]}`},
		{"ppt", `{"title": "Same", "slides": [{"title": "S", "content": ["x", "y"]}]}`},
	} {
		a := generate(t, g, tt.docType, tt.ir)
		b := generate(t, g, tt.docType, tt.ir)
		if !bytes.Equal(a.Content, b.Content) {
			t.Errorf("%s: identical IR produced different containers", tt.docType)
		}
		if a.ID == b.ID {
			t.Errorf("%s: generations share id %s", tt.docType, a.ID)
		}
	}
}

func TestConcurrentGenerate(t *testing.T) {
	sink := output.NewMemorySink()
	g := New(Options{Sink: sink})
	inputs := map[string]string{
		"word":  `{"title": "W", "sections": [{"content": "c"}]}`,
		"excel": budgetIR,
		"ppt":   `{"title": "P", "slides": [{"title": "s", "content": "x"}]}`,
	}

	const rounds = 4
	var wg sync.WaitGroup
	results := make(chan *Result, rounds*len(inputs))
	for range rounds {
		for docType, ir := range inputs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results <- g.Generate(context.Background(), docType, []byte(ir), "")
			}()
		}
	}
	wg.Wait()
	close(results)

	for res := range results {
		if !res.Success {
			t.Errorf("%s failed: %s", res.DocType, res.Error)
		}
	}
	if n := len(sink.Names()); n != rounds*len(inputs) {
		t.Errorf("sink holds %d containers, expected %d", n, rounds*len(inputs))
	}
}

func TestRenderErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("wrapped: %w", NewRenderError(Excel, "output", cause))
	if !errors.Is(err, ErrRenderFailure) || !errors.Is(err, cause) {
		t.Errorf("RenderError should match ErrRenderFailure and its cause: %v", err)
	}
	if got := ErrorKind(err); got != KindRenderFailure {
		t.Errorf("ErrorKind = %q", got)
	}
	if got := err.Error(); !strings.Contains(got, "excel (output): disk full") {
		t.Errorf("Error() = %q", got)
	}
}
