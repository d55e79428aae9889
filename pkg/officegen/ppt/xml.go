package ppt

import "encoding/xml"

// PresentationML and DrawingML element types. Prefixed tag names are written literally;
// every part root declares the a, r and p namespaces.

type xNamespaces struct {
	A string `xml:"xmlns:a,attr"`
	R string `xml:"xmlns:r,attr"`
	P string `xml:"xmlns:p,attr"`
}

type xPresentation struct {
	XMLName xml.Name `xml:"p:presentation"`
	xNamespaces
	SaveSubsetFonts string        `xml:"saveSubsetFonts,attr"`
	MasterIDs       xMasterIDList `xml:"p:sldMasterIdLst"`
	SlideIDs        *xSlideIDList `xml:"p:sldIdLst,omitempty"`
	SlideSize       xSlideSize    `xml:"p:sldSz"`
	NotesSize       xExt          `xml:"p:notesSz"`
	DefaultText     xInner        `xml:"p:defaultTextStyle"`
}

type xMasterIDList struct {
	IDs []xRelID `xml:"p:sldMasterId"`
}

type xSlideIDList struct {
	IDs []xRelID `xml:"p:sldId"`
}

type xRelID struct {
	ID  uint32 `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

type xSlideSize struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

type xInner struct {
	Inner string `xml:",innerxml"`
}

type xSlide struct {
	XMLName xml.Name `xml:"p:sld"`
	xNamespaces
	CSld   xCSld  `xml:"p:cSld"`
	ClrMap xInner `xml:"p:clrMapOvr"`
}

type xLayout struct {
	XMLName xml.Name `xml:"p:sldLayout"`
	xNamespaces
	Type     string `xml:"type,attr"`
	Preserve string `xml:"preserve,attr"`
	CSld     xCSld  `xml:"p:cSld"`
	ClrMap   xInner `xml:"p:clrMapOvr"`
}

type xMaster struct {
	XMLName xml.Name `xml:"p:sldMaster"`
	xNamespaces
	CSld      xCSld         `xml:"p:cSld"`
	ClrMap    xClrMap       `xml:"p:clrMap"`
	LayoutIDs xLayoutIDList `xml:"p:sldLayoutIdLst"`
	TxStyles  xInner        `xml:"p:txStyles"`
}

type xClrMap struct {
	Bg1      string `xml:"bg1,attr"`
	Tx1      string `xml:"tx1,attr"`
	Bg2      string `xml:"bg2,attr"`
	Tx2      string `xml:"tx2,attr"`
	Accent1  string `xml:"accent1,attr"`
	Accent2  string `xml:"accent2,attr"`
	Accent3  string `xml:"accent3,attr"`
	Accent4  string `xml:"accent4,attr"`
	Accent5  string `xml:"accent5,attr"`
	Accent6  string `xml:"accent6,attr"`
	Hlink    string `xml:"hlink,attr"`
	FolHlink string `xml:"folHlink,attr"`
}

type xLayoutIDList struct {
	IDs []xRelID `xml:"p:sldLayoutId"`
}

type xCSld struct {
	Name   string  `xml:"name,attr,omitempty"`
	Bg     *xInner `xml:"p:bg,omitempty"`
	SpTree xSpTree `xml:"p:spTree"`
}

type xSpTree struct {
	NvGrpSpPr xNvGrpSpPr `xml:"p:nvGrpSpPr"`
	GrpSpPr   xGrpSpPr   `xml:"p:grpSpPr"`
	Shapes    []any
}

type xNvGrpSpPr struct {
	CNvPr      xCNvPr   `xml:"p:cNvPr"`
	CNvGrpSpPr struct{} `xml:"p:cNvGrpSpPr"`
	NvPr       struct{} `xml:"p:nvPr"`
}

type xGrpSpPr struct {
	Xfrm struct {
		Off   xOff `xml:"a:off"`
		Ext   xExt `xml:"a:ext"`
		ChOff xOff `xml:"a:chOff"`
		ChExt xExt `xml:"a:chExt"`
	} `xml:"a:xfrm"`
}

type xCNvPr struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type xOff struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type xExt struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

type xXfrm struct {
	Off xOff `xml:"a:off"`
	Ext xExt `xml:"a:ext"`
}

type xShape struct {
	XMLName xml.Name     `xml:"p:sp"`
	NvSpPr  xNvSpPr      `xml:"p:nvSpPr"`
	SpPr    xSpPr        `xml:"p:spPr"`
	Style   *xShapeStyle `xml:"p:style,omitempty"`
	TxBody  *xTxBody     `xml:"p:txBody,omitempty"`
}

type xNvSpPr struct {
	CNvPr   xCNvPr   `xml:"p:cNvPr"`
	CNvSpPr xCNvSpPr `xml:"p:cNvSpPr"`
	NvPr    xNvPr    `xml:"p:nvPr"`
}

type xCNvSpPr struct {
	TxBox string    `xml:"txBox,attr,omitempty"`
	Locks *xSpLocks `xml:"a:spLocks,omitempty"`
}

type xSpLocks struct {
	NoGrp string `xml:"noGrp,attr"`
}

type xNvPr struct {
	Ph *xPlaceholder `xml:"p:ph,omitempty"`
}

type xPlaceholder struct {
	Type string `xml:"type,attr,omitempty"`
	Idx  string `xml:"idx,attr,omitempty"`
}

type xSpPr struct {
	Xfrm   *xXfrm      `xml:"a:xfrm,omitempty"`
	Geom   *xPrstGeom  `xml:"a:prstGeom,omitempty"`
	Fill   *xSolidFill `xml:"a:solidFill,omitempty"`
	NoFill *struct{}   `xml:"a:noFill,omitempty"`
}

type xPrstGeom struct {
	Prst  string   `xml:"prst,attr"`
	AvLst struct{} `xml:"a:avLst"`
}

type xSolidFill struct {
	SrgbClr   *xClr `xml:"a:srgbClr,omitempty"`
	SchemeClr *xClr `xml:"a:schemeClr,omitempty"`
}

type xClr struct {
	Val string `xml:"val,attr"`
}

type xShapeStyle struct {
	LnRef     xStyleRef `xml:"a:lnRef"`
	FillRef   xStyleRef `xml:"a:fillRef"`
	EffectRef xStyleRef `xml:"a:effectRef"`
	FontRef   struct {
		Idx       string `xml:"idx,attr"`
		SchemeClr xClr   `xml:"a:schemeClr"`
	} `xml:"a:fontRef"`
}

type xStyleRef struct {
	Idx       string `xml:"idx,attr"`
	SchemeClr xClr   `xml:"a:schemeClr"`
}

type xTxBody struct {
	BodyPr   xBodyPr  `xml:"a:bodyPr"`
	LstStyle struct{} `xml:"a:lstStyle"`
	Paras    []xPara  `xml:"a:p"`
}

type xBodyPr struct {
	Wrap      string    `xml:"wrap,attr,omitempty"`
	RtlCol    string    `xml:"rtlCol,attr,omitempty"`
	Anchor    string    `xml:"anchor,attr,omitempty"`
	SpAutoFit *struct{} `xml:"a:spAutoFit,omitempty"`
}

type xPara struct {
	PPr    *xPPr  `xml:"a:pPr,omitempty"`
	Runs   []xRun `xml:"a:r"`
	EndRPr *xRPr  `xml:"a:endParaRPr,omitempty"`
}

type xPPr struct {
	Lvl  string `xml:"lvl,attr,omitempty"`
	Algn string `xml:"algn,attr,omitempty"`
}

type xRun struct {
	RPr *xRPr  `xml:"a:rPr,omitempty"`
	T   string `xml:"a:t"`
}

type xRPr struct {
	Lang  string      `xml:"lang,attr,omitempty"`
	Sz    int         `xml:"sz,attr,omitempty"`
	B     string      `xml:"b,attr,omitempty"`
	I     string      `xml:"i,attr,omitempty"`
	Dirty string      `xml:"dirty,attr,omitempty"`
	Fill  *xSolidFill `xml:"a:solidFill,omitempty"`
	Latin *xTypeface  `xml:"a:latin,omitempty"`
	EA    *xTypeface  `xml:"a:ea,omitempty"`
}

type xTypeface struct {
	Typeface string `xml:"typeface,attr"`
}

type xPicture struct {
	XMLName xml.Name `xml:"p:pic"`
	NvPicPr struct {
		CNvPr    xCNvPr `xml:"p:cNvPr"`
		CNvPicPr struct {
			Locks struct {
				NoChangeAspect string `xml:"noChangeAspect,attr"`
			} `xml:"a:picLocks"`
		} `xml:"p:cNvPicPr"`
		NvPr struct{} `xml:"p:nvPr"`
	} `xml:"p:nvPicPr"`
	BlipFill struct {
		Blip struct {
			Embed string `xml:"r:embed,attr"`
		} `xml:"a:blip"`
		Stretch struct {
			FillRect struct{} `xml:"a:fillRect"`
		} `xml:"a:stretch"`
	} `xml:"p:blipFill"`
	SpPr xSpPr `xml:"p:spPr"`
}

type xGraphicFrame struct {
	XMLName          xml.Name `xml:"p:graphicFrame"`
	NvGraphicFramePr struct {
		CNvPr             xCNvPr `xml:"p:cNvPr"`
		CNvGraphicFramePr struct {
			Locks struct {
				NoGrp string `xml:"noGrp,attr"`
			} `xml:"a:graphicFrameLocks"`
		} `xml:"p:cNvGraphicFramePr"`
		NvPr struct{} `xml:"p:nvPr"`
	} `xml:"p:nvGraphicFramePr"`
	Xfrm    xXfrm `xml:"p:xfrm"`
	Graphic struct {
		Data struct {
			URI string `xml:"uri,attr"`
			Tbl xTable `xml:"a:tbl"`
		} `xml:"a:graphicData"`
	} `xml:"a:graphic"`
}

type xTable struct {
	Props struct {
		FirstRow string `xml:"firstRow,attr"`
		BandRow  string `xml:"bandRow,attr"`
		StyleID  string `xml:"a:tableStyleId"`
	} `xml:"a:tblPr"`
	Grid struct {
		Cols []xGridCol `xml:"a:gridCol"`
	} `xml:"a:tblGrid"`
	Rows []xTableRow `xml:"a:tr"`
}

type xGridCol struct {
	W int64 `xml:"w,attr"`
}

type xTableRow struct {
	H     int64        `xml:"h,attr"`
	Cells []xTableCell `xml:"a:tc"`
}

type xTableCell struct {
	TxBody xTxBody  `xml:"a:txBody"`
	TcPr   struct{} `xml:"a:tcPr"`
}
