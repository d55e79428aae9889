// Package word renders word-processing documents as WordprocessingML (.docx) containers.
package word

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/nowaywastaken/AI-Office/pkg/officegen/ooxml"
	"github.com/nowaywastaken/AI-Office/pkg/officegen/output"
	"github.com/nowaywastaken/AI-Office/pkg/officegen/style"
)

// ErrFinalized is returned when an engine is used after its document was rendered.
var ErrFinalized = errors.New("document already rendered")

// Page geometry defaults in twips: A4 portrait, 2.54cm top/bottom and 3.18cm left/right margins.
const (
	defaultPageWidth    = 11906
	defaultPageHeight   = 16838
	defaultMarginTop    = 1440
	defaultMarginBottom = 1440
	defaultMarginLeft   = 1803
	defaultMarginRight  = 1803
	headerFooterMargin  = 708
)

// Numeric limits of WordprocessingML attributes.
const (
	// MinFontSize and MaxFontSize bound run font sizes in points (w:sz is 1 to 3276 half-points).
	MinFontSize = 0.5
	MaxFontSize = 1638.0
	// maxTwips bounds spacing, indents and page lengths.
	maxTwips = 31680
	// lineUnit is the w:line value of single spacing.
	lineUnit = 240
)

// HeadingStyle overrides the default style of a heading level.
type HeadingStyle struct {
	FontName string
	FontSize *float64
	Color    string
}

// ParagraphStyle describes the paragraph and run formatting of one paragraph.
// Nil pointers and empty strings keep the document defaults.
type ParagraphStyle struct {
	FontName  string
	FontSize  *float64
	Bold      bool
	Italic    bool
	Underline bool
	Color     string
	Alignment string
	// LineSpacing is a multiplier, or points when LineSpacingRule is exact or at-least.
	LineSpacing     *float64
	LineSpacingRule string
	// SpaceBefore and SpaceAfter are in points.
	SpaceBefore *float64
	SpaceAfter  *float64
	// FirstLineIndent is in centimeters.
	FirstLineIndent *float64
}

type pageSetup struct {
	width, height            int64
	top, bottom, left, right int64
}

type mediaPart struct {
	name string
	img  *ooxml.Image
}

// Engine builds one document. It is not safe for concurrent use and renders exactly once.
type Engine struct {
	log    *slog.Logger
	title  string
	blocks []any
	page   pageSetup
	rels   *ooxml.Relationships
	media  []mediaPart
	nextID int
	done   bool
}

// New returns an engine holding an empty A4 document.
func New(log *slog.Logger) *Engine {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	rels := ooxml.NewRelationships()
	rels.Add(ooxml.RelStyles, "styles.xml")
	return &Engine{
		log: log,
		page: pageSetup{
			width:  defaultPageWidth,
			height: defaultPageHeight,
			top:    defaultMarginTop,
			bottom: defaultMarginBottom,
			left:   defaultMarginLeft,
			right:  defaultMarginRight,
		},
		rels: rels,
	}
}

// SetTitle records the document title in the core properties.
func (e *Engine) SetTitle(title string) {
	e.title = title
}

// SetPageMargins sets the margins of every page.
func (e *Engine) SetPageMargins(top, bottom, left, right float64, unit style.Unit) error {
	if e.done {
		return ErrFinalized
	}
	var tw [4]int64
	for i, v := range []float64{top, bottom, left, right} {
		t, err := twips("page margin", v, unit, 0, maxTwips)
		if err != nil {
			return err
		}
		tw[i] = t
	}
	page := e.page
	page.top, page.bottom, page.left, page.right = tw[0], tw[1], tw[2], tw[3]
	if err := page.check(); err != nil {
		return err
	}
	e.page = page
	return nil
}

// SetPageSize sets the size of every page.
func (e *Engine) SetPageSize(width, height float64, unit style.Unit) error {
	if e.done {
		return ErrFinalized
	}
	if !(width > 0) || !(height > 0) {
		return fmt.Errorf("invalid page size %vx%v%s", width, height, unit)
	}
	w, err := twips("page width", width, unit, 1, maxTwips)
	if err != nil {
		return err
	}
	h, err := twips("page height", height, unit, 1, maxTwips)
	if err != nil {
		return err
	}
	page := e.page
	page.width, page.height = w, h
	if err := page.check(); err != nil {
		return err
	}
	e.page = page
	return nil
}

// check reports margins that leave no text area on the page.
func (p pageSetup) check() error {
	if p.top+p.bottom >= p.height || p.left+p.right >= p.width {
		return fmt.Errorf("%w: margins %d/%d/%d/%d twips do not fit a %dx%d page",
			style.ErrOutOfRange, p.top, p.bottom, p.left, p.right, p.width, p.height)
	}
	return nil
}

// twips converts v to twips, failing when the result lies outside [lo, hi].
func twips(name string, v float64, unit style.Unit, lo, hi int64) (int64, error) {
	tw := style.ToPoints(v, unit) * style.TwipsPerPoint
	if err := style.CheckRange(name+" (twips)", tw, float64(lo), float64(hi)); err != nil {
		return 0, err
	}
	return int64(math.Round(tw)), nil
}

// AddHeading appends a heading. Level 0 uses the Title style; levels above 9 use Heading9.
func (e *Engine) AddHeading(text string, level int, hs HeadingStyle) error {
	if e.done {
		return ErrFinalized
	}
	props, err := e.runProps(hs.FontName, hs.FontSize, hs.Color)
	if err != nil {
		return err
	}
	e.blocks = append(e.blocks, xParagraph{
		Props: &xParaProps{Style: &xVal{Val: headingStyleID(level)}},
		Runs:  []xRun{textRun(text, props)},
	})
	return nil
}

// AddParagraph appends a paragraph holding a single run.
func (e *Engine) AddParagraph(text string, ps ParagraphStyle) error {
	if e.done {
		return ErrFinalized
	}
	props, err := e.runProps(ps.FontName, ps.FontSize, ps.Color)
	if err != nil {
		return err
	}
	pprops, err := e.paraProps(ps)
	if err != nil {
		return err
	}
	if ps.Bold || ps.Italic || ps.Underline {
		if props == nil {
			props = &xRunProps{}
		}
		if ps.Bold {
			props.Bold = &xOnOff{}
		}
		if ps.Italic {
			props.Italic = &xOnOff{}
		}
		if ps.Underline {
			props.Underline = &xVal{Val: "single"}
		}
	}
	e.blocks = append(e.blocks, xParagraph{
		Props: pprops,
		Runs:  []xRun{textRun(text, props)},
	})
	return nil
}

// AddTable appends a table. Empty data adds nothing. colWidths are in centimeters;
// missing or non-positive widths share the text width evenly.
func (e *Engine) AddTable(data [][]string, header bool, styleName string, colWidths []float64) error {
	if e.done {
		return ErrFinalized
	}
	cols := 0
	for _, row := range data {
		cols = max(cols, len(row))
	}
	if cols == 0 {
		e.log.Debug("skipping empty table")
		return nil
	}

	styleID := "TableGrid"
	if name := strings.ToLower(strings.TrimSpace(styleName)); name != "" {
		if id, ok := tableStyles[name]; ok {
			styleID = id
		} else {
			e.log.Warn("unknown table style, using Table Grid", "style", styleName)
		}
	}

	textWidth := e.page.width - e.page.left - e.page.right
	widths := make([]int64, cols)
	grid := make([]xGridCol, cols)
	for i := range widths {
		if i < len(colWidths) && colWidths[i] > 0 {
			widths[i] = style.ToTwips(colWidths[i], style.Centimeters)
		} else {
			widths[i] = textWidth / int64(cols)
		}
		grid[i] = xGridCol{W: widths[i]}
	}

	tbl := xTable{
		Props: xTableProps{
			Style: &xVal{Val: styleID},
			Width: xWidth{W: 0, Type: "auto"},
			Look:  &xLook{Val: "04A0", FirstRow: "1", NoHBand: "0", NoVBand: "1"},
		},
		Grid: xTableGrid{Cols: grid},
	}
	for r, row := range data {
		var props *xRunProps
		if header && r == 0 {
			props = &xRunProps{Bold: &xOnOff{}}
		}
		tr := xTableRow{Cells: make([]xTableCell, cols)}
		for c := range cols {
			text := ""
			if c < len(row) {
				text = row[c]
			}
			tr.Cells[c] = xTableCell{
				Props:      xCellProps{Width: xWidth{W: widths[c], Type: "dxa"}},
				Paragraphs: []xParagraph{{Runs: []xRun{textRun(text, props)}}},
			}
		}
		tbl.Rows = append(tbl.Rows, tr)
	}
	e.blocks = append(e.blocks, tbl)
	return nil
}

// AddImage appends an inline picture in its own paragraph. A non-positive width or height
// is derived from the other keeping the aspect ratio; both unset use the native size.
// An empty unit means centimeters.
func (e *Engine) AddImage(path string, width, height float64, unit style.Unit) error {
	if e.done {
		return ErrFinalized
	}
	img, err := ooxml.LoadImage(path)
	if err != nil {
		return fmt.Errorf("add image %s: %w", path, err)
	}
	if unit == "" {
		unit = style.Centimeters
	}
	var w, h int64
	if width > 0 {
		w = style.ToEMU(width, unit)
	}
	if height > 0 {
		h = style.ToEMU(height, unit)
	}
	cx, cy := img.Extent(w, h)

	e.nextID++
	name := fmt.Sprintf("media/image%d.%s", len(e.media)+1, img.Ext)
	rID := e.rels.Add(ooxml.RelImage, name)
	e.media = append(e.media, mediaPart{name: name, img: img})

	e.blocks = append(e.blocks, xParagraph{
		Runs: []xRun{{Content: []any{inlineDrawing(e.nextID, rID, cx, cy)}}},
	})
	return nil
}

func inlineDrawing(id int, rID string, cx, cy int64) xDrawing {
	name := "Picture " + strconv.Itoa(id)
	var d xDrawing
	in := &d.Inline
	in.DistT, in.DistB, in.DistL, in.DistR = "0", "0", "0", "0"
	in.Extent = xExtent{Cx: cx, Cy: cy}
	in.DocPr = xDocPr{ID: id, Name: name}
	in.FramePr.Locks.NoChangeAspect = "1"
	in.Graphic.Data.URI = ooxml.NsPic

	pic := &in.Graphic.Data.Pic
	pic.NvPicPr.CNvPr = xDocPr{ID: id, Name: name}
	pic.BlipFill.Blip.Embed = rID
	pic.SpPr.Xfrm.Ext = xExtent{Cx: cx, Cy: cy}
	pic.SpPr.Geom.Prst = "rect"
	return d
}

// runProps builds run properties for the font and colour overrides; nil when nothing is set.
func (e *Engine) runProps(fontName string, fontSize *float64, color string) (*xRunProps, error) {
	var props xRunProps
	set := false
	if name := strings.TrimSpace(fontName); name != "" {
		props.Fonts = &xFonts{ASCII: name, HAnsi: name, EastAsia: name, CS: name}
		set = true
	}
	if fontSize != nil {
		if err := style.CheckRange("font size", *fontSize, MinFontSize, MaxFontSize); err != nil {
			return nil, err
		}
		sz := strconv.Itoa(style.ToHalfPoints(*fontSize))
		props.Size = &xVal{Val: sz}
		props.SizeCS = &xVal{Val: sz}
		set = true
	}
	hex, ok, err := style.ColorHex(color)
	if err != nil {
		e.log.Warn("ignoring invalid text color", "color", color, "error", err)
	}
	if ok {
		props.Color = &xVal{Val: hex}
		set = true
	}
	if !set {
		return nil, nil
	}
	return &props, nil
}

func (e *Engine) paraProps(ps ParagraphStyle) (*xParaProps, error) {
	var props xParaProps
	set := false

	if ps.Alignment != "" {
		a, ok := style.LookupAlignment(ps.Alignment)
		if !ok {
			e.log.Warn("unknown alignment, using left", "alignment", ps.Alignment)
		}
		props.Jc = &xVal{Val: a.WordValue()}
		set = true
	}

	sp, err := e.spacing(ps)
	if err != nil {
		return nil, err
	}
	if sp != nil {
		props.Spacing = sp
		set = true
	}

	if ps.FirstLineIndent != nil {
		tw, err := twips("first line indent", *ps.FirstLineIndent, style.Centimeters, -maxTwips, maxTwips)
		if err != nil {
			return nil, err
		}
		if tw >= 0 {
			props.Ind = &xInd{FirstLine: strconv.FormatInt(tw, 10)}
		} else {
			props.Ind = &xInd{Hanging: strconv.FormatInt(-tw, 10)}
		}
		set = true
	}

	if !set {
		return nil, nil
	}
	return &props, nil
}

func (e *Engine) spacing(ps ParagraphStyle) (*xSpacing, error) {
	var sp xSpacing
	if ps.SpaceBefore != nil {
		tw, err := twips("space before", *ps.SpaceBefore, style.Points, 0, maxTwips)
		if err != nil {
			return nil, err
		}
		sp.Before = strconv.FormatInt(tw, 10)
	}
	if ps.SpaceAfter != nil {
		tw, err := twips("space after", *ps.SpaceAfter, style.Points, 0, maxTwips)
		if err != nil {
			return nil, err
		}
		sp.After = strconv.FormatInt(tw, 10)
	}

	rule := style.LineSpacingMultiple
	if ps.LineSpacingRule != "" {
		r, ok := style.LookupLineSpacingRule(ps.LineSpacingRule)
		if !ok {
			e.log.Warn("unknown line spacing rule, using multiple", "rule", ps.LineSpacingRule)
		}
		rule = r
	}
	switch rule {
	case style.LineSpacingSingle:
		sp.Line, sp.LineRule = "240", "auto"
	case style.LineSpacingOneAndHalf:
		sp.Line, sp.LineRule = "360", "auto"
	case style.LineSpacingDouble:
		sp.Line, sp.LineRule = "480", "auto"
	case style.LineSpacingExact, style.LineSpacingAtLeast:
		if ps.LineSpacing != nil {
			tw, err := twips("line spacing", *ps.LineSpacing, style.Points, 1, maxTwips)
			if err != nil {
				return nil, err
			}
			sp.Line = strconv.FormatInt(tw, 10)
			sp.LineRule = "exact"
			if rule == style.LineSpacingAtLeast {
				sp.LineRule = "atLeast"
			}
		}
	default:
		if ps.LineSpacing != nil {
			line := *ps.LineSpacing * lineUnit
			if err := style.CheckRange("line spacing (240ths of a line)", line, 1, maxTwips); err != nil {
				return nil, err
			}
			sp.Line = strconv.Itoa(int(math.Round(line)))
			sp.LineRule = "auto"
		}
	}

	if sp == (xSpacing{}) {
		return nil, nil
	}
	return &sp, nil
}

// textRun splits text on newlines into w:t elements separated by w:br.
func textRun(text string, props *xRunProps) xRun {
	run := xRun{Props: props}
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			run.Content = append(run.Content, xBreak{})
		}
		if line == "" {
			continue
		}
		t := xText{Value: line}
		if strings.TrimSpace(line) != line {
			t.Space = "preserve"
		}
		run.Content = append(run.Content, t)
	}
	return run
}

// SaveAs renders the document and writes it to path. A failed write leaves no file behind.
func (e *Engine) SaveAs(path string) error {
	data, err := e.Bytes()
	if err != nil {
		return err
	}
	return output.WriteFileAtomic(path, data, 0o644)
}
