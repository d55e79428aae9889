package word

import "encoding/xml"

// WordprocessingML element types. Prefixed tag names are written literally; the
// namespace declarations live on the w:document root.

type xDocument struct {
	XMLName  xml.Name `xml:"w:document"`
	XmlnsW   string   `xml:"xmlns:w,attr"`
	XmlnsR   string   `xml:"xmlns:r,attr"`
	XmlnsWP  string   `xml:"xmlns:wp,attr"`
	XmlnsA   string   `xml:"xmlns:a,attr"`
	XmlnsPic string   `xml:"xmlns:pic,attr"`
	Body     xBody    `xml:"w:body"`
}

type xBody struct {
	Blocks []any
	SectPr xSectPr `xml:"w:sectPr"`
}

type xSectPr struct {
	PgSz  xPageSize    `xml:"w:pgSz"`
	PgMar xPageMargins `xml:"w:pgMar"`
}

type xPageSize struct {
	W int64 `xml:"w:w,attr"`
	H int64 `xml:"w:h,attr"`
}

type xPageMargins struct {
	Top    int64 `xml:"w:top,attr"`
	Right  int64 `xml:"w:right,attr"`
	Bottom int64 `xml:"w:bottom,attr"`
	Left   int64 `xml:"w:left,attr"`
	Header int64 `xml:"w:header,attr"`
	Footer int64 `xml:"w:footer,attr"`
	Gutter int64 `xml:"w:gutter,attr"`
}

type xVal struct {
	Val string `xml:"w:val,attr"`
}

type xOnOff struct{}

type xParagraph struct {
	XMLName xml.Name    `xml:"w:p"`
	Props   *xParaProps `xml:"w:pPr,omitempty"`
	Runs    []xRun      `xml:"w:r"`
}

type xParaProps struct {
	Style   *xVal     `xml:"w:pStyle,omitempty"`
	Spacing *xSpacing `xml:"w:spacing,omitempty"`
	Ind     *xInd     `xml:"w:ind,omitempty"`
	Jc      *xVal     `xml:"w:jc,omitempty"`
}

type xSpacing struct {
	Before   string `xml:"w:before,attr,omitempty"`
	After    string `xml:"w:after,attr,omitempty"`
	Line     string `xml:"w:line,attr,omitempty"`
	LineRule string `xml:"w:lineRule,attr,omitempty"`
}

type xInd struct {
	FirstLine string `xml:"w:firstLine,attr,omitempty"`
	Hanging   string `xml:"w:hanging,attr,omitempty"`
}

type xRun struct {
	Props   *xRunProps `xml:"w:rPr,omitempty"`
	Content []any
}

type xRunProps struct {
	Fonts     *xFonts `xml:"w:rFonts,omitempty"`
	Bold      *xOnOff `xml:"w:b,omitempty"`
	Italic    *xOnOff `xml:"w:i,omitempty"`
	Color     *xVal   `xml:"w:color,omitempty"`
	Size      *xVal   `xml:"w:sz,omitempty"`
	SizeCS    *xVal   `xml:"w:szCs,omitempty"`
	Underline *xVal   `xml:"w:u,omitempty"`
}

type xFonts struct {
	ASCII    string `xml:"w:ascii,attr"`
	HAnsi    string `xml:"w:hAnsi,attr"`
	EastAsia string `xml:"w:eastAsia,attr"`
	CS       string `xml:"w:cs,attr"`
}

type xText struct {
	XMLName xml.Name `xml:"w:t"`
	Space   string   `xml:"xml:space,attr,omitempty"`
	Value   string   `xml:",chardata"`
}

type xBreak struct {
	XMLName xml.Name `xml:"w:br"`
}

type xTable struct {
	XMLName xml.Name    `xml:"w:tbl"`
	Props   xTableProps `xml:"w:tblPr"`
	Grid    xTableGrid  `xml:"w:tblGrid"`
	Rows    []xTableRow `xml:"w:tr"`
}

type xTableProps struct {
	Style *xVal  `xml:"w:tblStyle,omitempty"`
	Width xWidth `xml:"w:tblW"`
	Look  *xLook `xml:"w:tblLook,omitempty"`
}

type xLook struct {
	Val      string `xml:"w:val,attr"`
	FirstRow string `xml:"w:firstRow,attr"`
	NoHBand  string `xml:"w:noHBand,attr"`
	NoVBand  string `xml:"w:noVBand,attr"`
}

type xWidth struct {
	W    int64  `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type xTableGrid struct {
	Cols []xGridCol `xml:"w:gridCol"`
}

type xGridCol struct {
	W int64 `xml:"w:w,attr"`
}

type xTableRow struct {
	Cells []xTableCell `xml:"w:tc"`
}

type xTableCell struct {
	Props      xCellProps   `xml:"w:tcPr"`
	Paragraphs []xParagraph `xml:"w:p"`
}

type xCellProps struct {
	Width xWidth `xml:"w:tcW"`
}

type xDrawing struct {
	XMLName xml.Name `xml:"w:drawing"`
	Inline  xInline  `xml:"wp:inline"`
}

type xInline struct {
	DistT   string   `xml:"distT,attr"`
	DistB   string   `xml:"distB,attr"`
	DistL   string   `xml:"distL,attr"`
	DistR   string   `xml:"distR,attr"`
	Extent  xExtent  `xml:"wp:extent"`
	DocPr   xDocPr   `xml:"wp:docPr"`
	FramePr xFramePr `xml:"wp:cNvGraphicFramePr"`
	Graphic xGraphic `xml:"a:graphic"`
}

type xExtent struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

type xOffset struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type xDocPr struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type xFramePr struct {
	Locks struct {
		NoChangeAspect string `xml:"noChangeAspect,attr"`
	} `xml:"a:graphicFrameLocks"`
}

type xGraphic struct {
	Data struct {
		URI string `xml:"uri,attr"`
		Pic xPic   `xml:"pic:pic"`
	} `xml:"a:graphicData"`
}

type xPic struct {
	NvPicPr struct {
		CNvPr    xDocPr   `xml:"pic:cNvPr"`
		CNvPicPr struct{} `xml:"pic:cNvPicPr"`
	} `xml:"pic:nvPicPr"`
	BlipFill struct {
		Blip struct {
			Embed string `xml:"r:embed,attr"`
		} `xml:"a:blip"`
		Stretch struct {
			FillRect struct{} `xml:"a:fillRect"`
		} `xml:"a:stretch"`
	} `xml:"pic:blipFill"`
	SpPr struct {
		Xfrm struct {
			Off xOffset `xml:"a:off"`
			Ext xExtent `xml:"a:ext"`
		} `xml:"a:xfrm"`
		Geom struct {
			Prst  string   `xml:"prst,attr"`
			AvLst struct{} `xml:"a:avLst"`
		} `xml:"a:prstGeom"`
	} `xml:"pic:spPr"`
}
