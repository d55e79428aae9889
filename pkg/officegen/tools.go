package officegen

import (
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/nowaywastaken/AI-Office/pkg/officegen/cellref"
	"github.com/nowaywastaken/AI-Office/pkg/officegen/excel"
	"github.com/nowaywastaken/AI-Office/pkg/officegen/models"
	"github.com/nowaywastaken/AI-Office/pkg/officegen/ppt"
	"github.com/nowaywastaken/AI-Office/pkg/officegen/style"
	"github.com/nowaywastaken/AI-Office/pkg/officegen/word"
)

// DefaultSlideTitle is used for slides without a title.
const DefaultSlideTitle = "Slide"

func (g *Generator) title(own, fallback string, dt DocType) string {
	if t := strings.TrimSpace(own); t != "" {
		return own
	}
	if t := strings.TrimSpace(fallback); t != "" {
		return fallback
	}
	return g.cfg.fallbackTitle(dt)
}

// RenderWord renders a TextDocument. It returns the container and the title used.
//
// Page margins come from the style guide, or the configured defaults when there is none.
// The title is written as a level-1 heading, followed by each section's optional heading
// and its content paragraph, in order.
func (g *Generator) RenderWord(doc *models.TextDocument, fallbackTitle string) ([]byte, string, error) {
	title := g.title(doc.Title, fallbackTitle, Word)
	wc := g.cfg.Word
	e := word.New(g.log.With("engine", Word))
	e.SetTitle(title)

	margins := wc.Margins
	guide := doc.Style
	if guide != nil && *guide != (models.StyleGuide{}) {
		m := wc.StyleMargin
		if guide.Margin != nil {
			m = *guide.Margin
		}
		margins = Margins{Top: m, Bottom: m, Left: m, Right: m}
	}
	if err := e.SetPageMargins(margins.Top, margins.Bottom, margins.Left, margins.Right, style.Centimeters); err != nil {
		return nil, title, NewRenderError(Word, "page", err)
	}

	if err := e.AddHeading(title, 1, word.HeadingStyle{}); err != nil {
		return nil, title, NewRenderError(Word, "heading", err)
	}

	base := word.ParagraphStyle{
		FontName:        wc.FontName,
		FontSize:        &wc.FontSize,
		LineSpacing:     &wc.LineSpacing,
		LineSpacingRule: "multiple",
		SpaceAfter:      &wc.SpaceAfter,
	}
	if guide != nil {
		if guide.FontName != "" {
			base.FontName = guide.FontName
		}
		if guide.FontSize != nil {
			base.FontSize = guide.FontSize
		}
		if guide.LineSpacing != nil {
			base.LineSpacing = guide.LineSpacing
		}
	}

	for _, sec := range doc.Sections {
		if sec.Heading != "" {
			if err := e.AddHeading(sec.Heading, sec.Level, word.HeadingStyle{}); err != nil {
				return nil, title, NewRenderError(Word, "heading", err)
			}
		}
		if err := e.AddParagraph(sec.Content, sectionStyle(base, sec.Style)); err != nil {
			return nil, title, NewRenderError(Word, "paragraph", err)
		}
	}

	data, err := e.Bytes()
	if err != nil {
		return nil, title, NewRenderError(Word, "container", err)
	}
	return data, title, nil
}

// sectionStyle overlays an explicit section style on the document paragraph style.
func sectionStyle(base word.ParagraphStyle, s *models.ParagraphStyle) word.ParagraphStyle {
	if s == nil {
		return base
	}
	ps := base
	if s.FontName != "" {
		ps.FontName = s.FontName
	}
	if s.FontSize != nil {
		ps.FontSize = s.FontSize
	}
	if s.Bold != nil {
		ps.Bold = *s.Bold
	}
	if s.Italic != nil {
		ps.Italic = *s.Italic
	}
	if s.Underline != nil {
		ps.Underline = *s.Underline
	}
	if s.Color != "" {
		ps.Color = s.Color
	}
	if s.Alignment != "" {
		ps.Alignment = s.Alignment
	}
	if s.LineSpacing != nil {
		ps.LineSpacing = s.LineSpacing
	}
	if s.LineSpacingRule != "" {
		ps.LineSpacingRule = s.LineSpacingRule
	}
	if s.SpaceBefore != nil {
		ps.SpaceBefore = s.SpaceBefore
	}
	if s.SpaceAfter != nil {
		ps.SpaceAfter = s.SpaceAfter
	}
	if s.FirstLineIndent != nil {
		ps.FirstLineIndent = s.FirstLineIndent
	}
	return ps
}

// RenderExcel renders a Spreadsheet. It returns the container and the title used.
//
// The sheet is named after the title, headers are written bold at row 1 and data rows start
// at row 2. Formulas are placed at their referenced cells; entries whose reference does not
// parse are skipped with a warning. Columns are auto-fitted and the header and data
// rectangle is bordered when both are present.
func (g *Generator) RenderExcel(sheet *models.Spreadsheet, fallbackTitle string) ([]byte, string, error) {
	title := g.title(sheet.Title, fallbackTitle, Excel)
	log := g.log.With("engine", Excel)
	ec := g.cfg.Excel
	e := excel.New(log)

	if excel.SanitizeSheetName(title) != "" {
		if err := e.SetSheetName(title); err != nil {
			return nil, title, NewRenderError(Excel, "sheet", err)
		}
	}

	if len(sheet.Headers) > 0 {
		values := make([]any, len(sheet.Headers))
		for i, h := range sheet.Headers {
			values[i] = h
		}
		if err := e.SetRowData(1, values, 1, true); err != nil {
			return nil, title, NewRenderError(Excel, "rows", err)
		}
	}
	for i, row := range sheet.Rows {
		if err := e.SetRowData(i+2, row, 1, false); err != nil {
			return nil, title, NewRenderError(Excel, "rows", err)
		}
	}

	refs := make([]string, 0, len(sheet.Formulas))
	for ref := range sheet.Formulas {
		refs = append(refs, ref)
	}
	slices.Sort(refs)
	for _, ref := range refs {
		row, col, err := cellref.Parse(ref)
		if err == nil && (row > excelize.TotalRows || col > excelize.MaxColumns) {
			err = cellref.ErrMalformedCellReference
		}
		if err != nil {
			log.Warn("skipping formula with malformed cell reference", "ref", ref, "error", err)
			continue
		}
		if err := e.SetFormula(row, col, sheet.Formulas[ref]); err != nil {
			return nil, title, NewRenderError(Excel, "formulas", err)
		}
	}

	if err := e.AutoFitColumns(ec.MinColumnWidth, ec.MaxColumnWidth); err != nil {
		return nil, title, NewRenderError(Excel, "columns", err)
	}
	if len(sheet.Headers) > 0 && len(sheet.Rows) > 0 {
		if err := e.AddBorders(1, 1, len(sheet.Rows)+1, sheet.Width(), ec.BorderStyle); err != nil {
			return nil, title, NewRenderError(Excel, "borders", err)
		}
	}

	data, err := e.Bytes()
	if err != nil {
		return nil, title, NewRenderError(Excel, "container", err)
	}
	return data, title, nil
}

// RenderPPT renders a SlideDeck. It returns the container and the title used.
//
// The deck opens with a title slide built from the deck title and subtitle. A leading slide
// of kind title is folded into it. Every later slide of kind title becomes another title
// slide whose subtitle is its first content line; all other slides become content slides.
func (g *Generator) RenderPPT(deck *models.SlideDeck, fallbackTitle string) ([]byte, string, error) {
	pc := g.cfg.PPT
	slides := deck.Slides

	title := deck.Title
	subtitle := deck.Subtitle
	if len(slides) > 0 && slides[0].Kind == models.SlideTitle {
		if strings.TrimSpace(title) == "" {
			title = slides[0].Title
		}
		if subtitle == "" && len(slides[0].Content) > 0 {
			subtitle = slides[0].Content[0]
		}
		slides = slides[1:]
	}
	title = g.title(title, fallbackTitle, PPT)
	if subtitle == "" {
		subtitle = pc.DefaultSubtitle
	}

	e := ppt.New(g.log.With("engine", PPT))
	e.SetTitle(title)
	if err := e.SetSlideSize(pc.SlideWidth, pc.SlideHeight, style.Inches); err != nil {
		return nil, title, NewRenderError(PPT, "layout", err)
	}
	if err := e.AddTitleSlide(title, subtitle); err != nil {
		return nil, title, NewRenderError(PPT, "slides", err)
	}

	for _, s := range slides {
		slideTitle := s.Title
		if strings.TrimSpace(slideTitle) == "" {
			slideTitle = DefaultSlideTitle
		}
		var err error
		if s.Kind == models.SlideTitle {
			sub := ""
			if len(s.Content) > 0 {
				sub = s.Content[0]
			}
			err = e.AddTitleSlide(slideTitle, sub)
		} else {
			err = e.AddContentSlide(slideTitle, s.Content)
		}
		if err != nil {
			return nil, title, NewRenderError(PPT, "slides", err)
		}
	}

	data, err := e.Bytes()
	if err != nil {
		return nil, title, NewRenderError(PPT, "container", err)
	}
	return data, title, nil
}
