// Package ppt renders slide decks as PresentationML (.pptx) containers.
package ppt

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/nowaywastaken/AI-Office/pkg/officegen/ooxml"
	"github.com/nowaywastaken/AI-Office/pkg/officegen/output"
	"github.com/nowaywastaken/AI-Office/pkg/officegen/style"
)

// ErrLayoutIndex indicates a layout index outside the built-in layouts.
var ErrLayoutIndex = errors.New("layout index out of range")

// ErrFinalized is returned when an engine is used after its deck was rendered.
var ErrFinalized = errors.New("presentation already rendered")

// Slide size limits and defaults in EMU.
const (
	MinSlideDimension = 914400
	MaxSlideDimension = 51206400

	defaultSlideWidth  = 12191695 // 13.333in
	defaultSlideHeight = 6858000  // 7.5in
)

// MinFontSize and MaxFontSize bound text box font sizes in points (a:rPr sz is 100 to 400000).
const (
	MinFontSize = 1.0
	MaxFontSize = 4000.0
)

// ShapeKind names an auto shape.
type ShapeKind string

const (
	ShapeRectangle        ShapeKind = "rectangle"
	ShapeOval             ShapeKind = "oval"
	ShapeRoundedRectangle ShapeKind = "rounded_rectangle"
	ShapeTriangle         ShapeKind = "triangle"
)

// shapeGeometry maps shape kinds to DrawingML preset geometries.
var shapeGeometry = map[ShapeKind]string{
	ShapeRectangle:        "rect",
	ShapeOval:             "ellipse",
	ShapeRoundedRectangle: "roundRect",
	ShapeTriangle:         "triangle",
}

// LookupShape resolves a shape kind name. "rounded-rectangle" and "ellipse" are accepted
// spellings. ok is false for unrecognized names, which resolve to a rectangle.
func LookupShape(name string) (ShapeKind, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "-", "_")
	switch n {
	case "ellipse", "circle":
		n = string(ShapeOval)
	case "rounded", "round_rectangle":
		n = string(ShapeRoundedRectangle)
	case "rect":
		n = string(ShapeRectangle)
	}
	if _, ok := shapeGeometry[ShapeKind(n)]; ok {
		return ShapeKind(n), true
	}
	return ShapeRectangle, false
}

// Box positions a shape on the slide. An empty Unit means inches.
type Box struct {
	Left, Top     float64
	Width, Height float64
	Unit          style.Unit
}

func (b Box) emu() (x, y, cx, cy int64) {
	unit := b.Unit
	if unit == "" {
		unit = style.Inches
	}
	return style.ToEMU(b.Left, unit), style.ToEMU(b.Top, unit), style.ToEMU(b.Width, unit), style.ToEMU(b.Height, unit)
}

// TextStyle formats the text of a text box.
type TextStyle struct {
	FontName  string
	FontSize  *float64
	Bold      bool
	Italic    bool
	Color     string
	Alignment string
}

type slide struct {
	layout int
	shapes []any
	rels   *ooxml.Relationships
	nextID int
}

// placeholders returns the placeholder shapes of the slide in layout order.
func (s *slide) placeholders() []*xShape {
	var result []*xShape
	for _, shape := range s.shapes {
		if sp, ok := shape.(*xShape); ok && sp.NvSpPr.NvPr.Ph != nil {
			result = append(result, sp)
		}
	}
	return result
}

func (s *slide) id() int {
	s.nextID++
	return s.nextID
}

type mediaPart struct {
	name string
	img  *ooxml.Image
}

// Engine builds one presentation. It tracks a current slide cursor and is not safe for concurrent use.
type Engine struct {
	log     *slog.Logger
	title   string
	width   int64
	height  int64
	slides  []*slide
	current *slide
	media   []mediaPart
	// mediaByDigest deduplicates identical pictures across slides.
	mediaByDigest map[string]string
	done          bool
}

// New returns an engine holding an empty 16:9 deck.
func New(log *slog.Logger) *Engine {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		log:           log,
		width:         defaultSlideWidth,
		height:        defaultSlideHeight,
		mediaByDigest: make(map[string]string),
	}
}

// SetTitle records the deck title in the core properties.
func (e *Engine) SetTitle(title string) {
	e.title = title
}

// SlideCount returns the number of slides added so far.
func (e *Engine) SlideCount() int {
	return len(e.slides)
}

// SlideSize returns the slide size in EMU.
func (e *Engine) SlideSize() (cx, cy int64) {
	return e.width, e.height
}

// SetSlideSize sets the size of every slide. Each dimension must lie within 1in..56in.
func (e *Engine) SetSlideSize(width, height float64, unit style.Unit) error {
	if e.done {
		return ErrFinalized
	}
	cx, cy := style.ToEMU(width, unit), style.ToEMU(height, unit)
	for _, v := range []int64{cx, cy} {
		if v < MinSlideDimension || v > MaxSlideDimension || math.IsNaN(width) || math.IsNaN(height) {
			return fmt.Errorf("slide size %vx%v%s out of range", width, height, unit)
		}
	}
	e.width, e.height = cx, cy
	return nil
}

// AddSlide appends a slide using a built-in layout and makes it current.
// It returns the zero-based index of the new slide.
func (e *Engine) AddSlide(layout int) (int, error) {
	if e.done {
		return 0, ErrFinalized
	}
	if layout < 0 || layout >= LayoutCount {
		return 0, fmt.Errorf("%w: %d", ErrLayoutIndex, layout)
	}
	s := &slide{layout: layout, rels: ooxml.NewRelationships(), nextID: 1}
	s.rels.Add(ooxml.RelSlideLayout, fmt.Sprintf("../slideLayouts/slideLayout%d.xml", layout+1))
	for _, p := range layouts[layout].placeholders {
		s.shapes = append(s.shapes, p.shape(s.id(), nil))
	}
	e.slides = append(e.slides, s)
	e.current = s
	return len(e.slides) - 1, nil
}

// AddTitleSlide appends a Title Slide layout slide.
func (e *Engine) AddTitleSlide(title, subtitle string) error {
	if _, err := e.AddSlide(LayoutTitle); err != nil {
		return err
	}
	ph := e.current.placeholders()
	setText(ph[0], title)
	if subtitle != "" && len(ph) > 1 {
		setText(ph[1], subtitle)
	}
	return nil
}

// AddContentSlide appends a Title and Content slide. The first line fills the body's
// existing paragraph; further lines are appended as paragraphs at level 0.
func (e *Engine) AddContentSlide(title string, lines []string) error {
	if _, err := e.AddSlide(LayoutTitleAndContent); err != nil {
		return err
	}
	ph := e.current.placeholders()
	setText(ph[0], title)
	if len(ph) < 2 {
		return nil
	}
	body := ph[1].TxBody
	body.Paras = []xPara{{}}
	for i, line := range lines {
		if i == 0 {
			body.Paras[0].Runs = []xRun{{T: line}}
			continue
		}
		body.Paras = append(body.Paras, xPara{PPr: &xPPr{Lvl: "0"}, Runs: []xRun{{T: line}}})
	}
	return nil
}

// setText replaces the text of a shape with a single run in a single paragraph.
func setText(sp *xShape, text string) {
	if sp.TxBody == nil {
		sp.TxBody = &xTxBody{}
	}
	sp.TxBody.Paras = []xPara{{Runs: []xRun{{T: text}}}}
}

// ensureSlide makes sure a current slide exists, adding a blank one if needed.
func (e *Engine) ensureSlide() (*slide, error) {
	if e.done {
		return nil, ErrFinalized
	}
	if e.current == nil {
		if _, err := e.AddSlide(LayoutBlank); err != nil {
			return nil, err
		}
	}
	return e.current, nil
}

// AddTextBox adds a word-wrapped text box to the current slide. Newlines start new paragraphs.
func (e *Engine) AddTextBox(text string, box Box, ts TextStyle) error {
	if e.done {
		return ErrFinalized
	}
	rpr, err := e.runProps(ts)
	if err != nil {
		return err
	}
	s, err := e.ensureSlide()
	if err != nil {
		return err
	}
	x, y, cx, cy := box.emu()

	align := style.AlignLeft
	if ts.Alignment != "" {
		a, ok := style.LookupAlignment(ts.Alignment)
		if !ok {
			e.log.Warn("unknown alignment, using left", "alignment", ts.Alignment)
		}
		align = a
	}

	id := s.id()
	sp := &xShape{
		NvSpPr: xNvSpPr{
			CNvPr:   xCNvPr{ID: id, Name: "TextBox " + strconv.Itoa(id-1)},
			CNvSpPr: xCNvSpPr{TxBox: "1"},
		},
		SpPr: xSpPr{
			Xfrm:   &xXfrm{Off: xOff{X: x, Y: y}, Ext: xExt{Cx: cx, Cy: cy}},
			Geom:   &xPrstGeom{Prst: "rect"},
			NoFill: &struct{}{},
		},
		TxBody: &xTxBody{BodyPr: xBodyPr{Wrap: "square", RtlCol: "0"}},
	}
	for _, line := range strings.Split(text, "\n") {
		sp.TxBody.Paras = append(sp.TxBody.Paras, xPara{
			PPr:  &xPPr{Algn: align.DrawingValue()},
			Runs: []xRun{{RPr: rpr, T: line}},
		})
	}
	s.shapes = append(s.shapes, sp)
	return nil
}

func (e *Engine) runProps(ts TextStyle) (*xRPr, error) {
	rpr := &xRPr{Lang: "en-US", Dirty: "0"}
	if ts.FontSize != nil {
		if err := style.CheckRange("font size", *ts.FontSize, MinFontSize, MaxFontSize); err != nil {
			return nil, err
		}
		rpr.Sz = style.ToCentipoints(*ts.FontSize)
	}
	if ts.Bold {
		rpr.B = "1"
	}
	if ts.Italic {
		rpr.I = "1"
	}
	if hex, ok, err := style.ColorHex(ts.Color); err != nil {
		e.log.Warn("ignoring invalid text color", "color", ts.Color, "error", err)
	} else if ok {
		rpr.Fill = &xSolidFill{SrgbClr: &xClr{Val: hex}}
	}
	if name := strings.TrimSpace(ts.FontName); name != "" {
		rpr.Latin = &xTypeface{Typeface: name}
		rpr.EA = &xTypeface{Typeface: name}
	}
	return rpr, nil
}

// AddShape adds an auto shape to the current slide. Unknown kinds fall back to a rectangle;
// an empty or invalid fill colour keeps the theme accent fill.
func (e *Engine) AddShape(kind string, box Box, fillColor string) error {
	s, err := e.ensureSlide()
	if err != nil {
		return err
	}
	shape, ok := LookupShape(kind)
	if !ok {
		e.log.Warn("unknown shape kind, using rectangle", "kind", kind)
	}
	x, y, cx, cy := box.emu()

	id := s.id()
	sp := &xShape{
		NvSpPr: xNvSpPr{
			CNvPr: xCNvPr{ID: id, Name: shapeName(shape) + " " + strconv.Itoa(id-1)},
		},
		SpPr: xSpPr{
			Xfrm: &xXfrm{Off: xOff{X: x, Y: y}, Ext: xExt{Cx: cx, Cy: cy}},
			Geom: &xPrstGeom{Prst: shapeGeometry[shape]},
		},
		Style: &xShapeStyle{
			LnRef:     xStyleRef{Idx: "1", SchemeClr: xClr{Val: "accent1"}},
			FillRef:   xStyleRef{Idx: "3", SchemeClr: xClr{Val: "accent1"}},
			EffectRef: xStyleRef{Idx: "2", SchemeClr: xClr{Val: "accent1"}},
		},
		TxBody: &xTxBody{
			BodyPr: xBodyPr{RtlCol: "0", Anchor: "ctr"},
			Paras:  []xPara{{PPr: &xPPr{Algn: "ctr"}}},
		},
	}
	sp.Style.FontRef.Idx = "minor"
	sp.Style.FontRef.SchemeClr = xClr{Val: "lt1"}

	if hex, ok, err := style.ColorHex(fillColor); err != nil {
		e.log.Warn("ignoring invalid fill color", "color", fillColor, "error", err)
	} else if ok {
		sp.SpPr.Fill = &xSolidFill{SrgbClr: &xClr{Val: hex}}
	}
	s.shapes = append(s.shapes, sp)
	return nil
}

func shapeName(kind ShapeKind) string {
	switch kind {
	case ShapeOval:
		return "Oval"
	case ShapeRoundedRectangle:
		return "Rounded Rectangle"
	case ShapeTriangle:
		return "Isosceles Triangle"
	default:
		return "Rectangle"
	}
}

// AddImage adds a picture to the current slide. A non-positive width or height is derived
// from the other keeping the aspect ratio; both unset use the native size.
func (e *Engine) AddImage(path string, left, top, width, height float64, unit style.Unit) error {
	s, err := e.ensureSlide()
	if err != nil {
		return err
	}
	img, err := ooxml.LoadImage(path)
	if err != nil {
		return fmt.Errorf("add image %s: %w", path, err)
	}
	if unit == "" {
		unit = style.Inches
	}
	var w, h int64
	if width > 0 {
		w = style.ToEMU(width, unit)
	}
	if height > 0 {
		h = style.ToEMU(height, unit)
	}
	cx, cy := img.Extent(w, h)

	sum := blake3.Sum256(img.Data)
	digest := hex.EncodeToString(sum[:])
	name, ok := e.mediaByDigest[digest]
	if !ok {
		name = fmt.Sprintf("media/image%d.%s", len(e.media)+1, img.Ext)
		e.media = append(e.media, mediaPart{name: name, img: img})
		e.mediaByDigest[digest] = name
	}
	rID := s.rels.Add(ooxml.RelImage, "../"+name)

	id := s.id()
	pic := &xPicture{}
	pic.NvPicPr.CNvPr = xCNvPr{ID: id, Name: "Picture " + strconv.Itoa(id-1)}
	pic.NvPicPr.CNvPicPr.Locks.NoChangeAspect = "1"
	pic.BlipFill.Blip.Embed = rID
	pic.SpPr = xSpPr{
		Xfrm: &xXfrm{
			Off: xOff{X: style.ToEMU(left, unit), Y: style.ToEMU(top, unit)},
			Ext: xExt{Cx: cx, Cy: cy},
		},
		Geom: &xPrstGeom{Prst: "rect"},
	}
	s.shapes = append(s.shapes, pic)
	return nil
}

// AddTable adds a table to the current slide. The column count is the widest row;
// column widths and row heights split the box evenly. Empty data adds nothing.
func (e *Engine) AddTable(data [][]string, box Box) error {
	s, err := e.ensureSlide()
	if err != nil {
		return err
	}
	cols := 0
	for _, row := range data {
		cols = max(cols, len(row))
	}
	if cols == 0 {
		e.log.Debug("skipping empty table")
		return nil
	}
	x, y, cx, cy := box.emu()
	colW := cx / int64(cols)
	rowH := cy / int64(len(data))

	id := s.id()
	frame := &xGraphicFrame{}
	frame.NvGraphicFramePr.CNvPr = xCNvPr{ID: id, Name: "Table " + strconv.Itoa(id-1)}
	frame.NvGraphicFramePr.CNvGraphicFramePr.Locks.NoGrp = "1"
	frame.Xfrm = xXfrm{Off: xOff{X: x, Y: y}, Ext: xExt{Cx: colW * int64(cols), Cy: rowH * int64(len(data))}}
	frame.Graphic.Data.URI = ooxml.NsTbl

	tbl := &frame.Graphic.Data.Tbl
	tbl.Props.FirstRow = "1"
	tbl.Props.BandRow = "1"
	tbl.Props.StyleID = DefaultTableStyleID
	for range cols {
		tbl.Grid.Cols = append(tbl.Grid.Cols, xGridCol{W: colW})
	}
	for _, row := range data {
		tr := xTableRow{H: rowH, Cells: make([]xTableCell, cols)}
		for c := range cols {
			para := xPara{}
			if c < len(row) && row[c] != "" {
				para.Runs = []xRun{{T: row[c]}}
			}
			tr.Cells[c] = xTableCell{TxBody: xTxBody{Paras: []xPara{para}}}
		}
		tbl.Rows = append(tbl.Rows, tr)
	}
	s.shapes = append(s.shapes, frame)
	return nil
}

// SaveAs renders the deck and writes it to path. A failed write leaves no file behind.
func (e *Engine) SaveAs(path string) error {
	data, err := e.Bytes()
	if err != nil {
		return err
	}
	return output.WriteFileAtomic(path, data, 0o644)
}
