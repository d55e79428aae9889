package word

import (
	"fmt"
	"strings"
)

// Document defaults: Normal text is Arial 11pt with an East Asian fallback font.
const (
	DefaultFontName     = "Arial"
	DefaultFontSize     = 11.0
	DefaultEastAsiaFont = "Microsoft YaHei"
)

// tableStyles maps accepted table style names to style IDs defined in styles.xml.
var tableStyles = map[string]string{
	"table grid": "TableGrid",
	"tablegrid":  "TableGrid",
	"normal":     "TableNormal",
}

// headingSizes are heading font sizes in half-points for levels 1..9.
var headingSizes = [...]int{32, 26, 24, 22, 22, 22, 22, 22, 22}

const stylesHead = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="%[1]s" w:hAnsi="%[1]s" w:eastAsia="%[2]s" w:cs="%[1]s"/><w:sz w:val="%[3]d"/><w:szCs w:val="%[3]d"/><w:lang w:val="en-US" w:eastAsia="zh-CN"/></w:rPr></w:rPrDefault><w:pPrDefault><w:pPr><w:spacing w:after="160" w:line="259" w:lineRule="auto"/></w:pPr></w:pPrDefault></w:docDefaults>
<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>
<w:style w:type="character" w:default="1" w:styleId="DefaultParagraphFont"><w:name w:val="Default Paragraph Font"/><w:uiPriority w:val="1"/><w:semiHidden/><w:unhideWhenUsed/></w:style>
<w:style w:type="table" w:default="1" w:styleId="TableNormal"><w:name w:val="Normal Table"/><w:uiPriority w:val="99"/><w:semiHidden/><w:unhideWhenUsed/><w:tblPr><w:tblInd w:w="0" w:type="dxa"/><w:tblCellMar><w:top w:w="0" w:type="dxa"/><w:left w:w="108" w:type="dxa"/><w:bottom w:w="0" w:type="dxa"/><w:right w:w="108" w:type="dxa"/></w:tblCellMar></w:tblPr></w:style>
<w:style w:type="table" w:styleId="TableGrid"><w:name w:val="Table Grid"/><w:basedOn w:val="TableNormal"/><w:uiPriority w:val="39"/><w:pPr><w:spacing w:after="0" w:line="240" w:lineRule="auto"/></w:pPr><w:tblPr><w:tblBorders><w:top w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:left w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:bottom w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:right w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:insideH w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:insideV w:val="single" w:sz="4" w:space="0" w:color="auto"/></w:tblBorders></w:tblPr></w:style>
<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:uiPriority w:val="10"/><w:qFormat/><w:pPr><w:spacing w:after="80" w:line="240" w:lineRule="auto"/><w:contextualSpacing/></w:pPr><w:rPr><w:spacing w:val="-10"/><w:kern w:val="28"/><w:sz w:val="56"/><w:szCs w:val="56"/></w:rPr></w:style>
`

const headingStyle = `<w:style w:type="paragraph" w:styleId="Heading%[1]d"><w:name w:val="heading %[1]d"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:uiPriority w:val="9"/><w:qFormat/><w:pPr><w:keepNext/><w:keepLines/><w:spacing w:before="%[2]d" w:after="80"/><w:outlineLvl w:val="%[3]d"/></w:pPr><w:rPr><w:b/><w:bCs/><w:color w:val="%[4]s"/><w:sz w:val="%[5]d"/><w:szCs w:val="%[5]d"/></w:rPr></w:style>
`

// stylesXML renders word/styles.xml.
func stylesXML() []byte {
	var b strings.Builder
	fmt.Fprintf(&b, stylesHead, DefaultFontName, DefaultEastAsiaFont, int(DefaultFontSize*2))
	for level := 1; level <= len(headingSizes); level++ {
		before, color := 160, "2F5496"
		if level == 1 {
			before = 360
		}
		if level > 3 {
			before, color = 80, "1F3763"
		}
		fmt.Fprintf(&b, headingStyle, level, before, level-1, color, headingSizes[level-1])
	}
	b.WriteString("</w:styles>")
	return []byte(b.String())
}

// headingStyleID returns the paragraph style for a heading level; level 0 is the Title style.
func headingStyleID(level int) string {
	if level <= 0 {
		return "Title"
	}
	return fmt.Sprintf("Heading%d", min(level, len(headingSizes)))
}
