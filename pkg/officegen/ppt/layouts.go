package ppt

import (
	"math"
	"strconv"

	"github.com/nowaywastaken/AI-Office/pkg/officegen/ooxml"
)

// Built-in layout indexes.
const (
	LayoutTitle = iota
	LayoutTitleAndContent
	LayoutSectionHeader
	LayoutTwoContent
	LayoutComparison
	LayoutTitleOnly
	LayoutBlank
	LayoutContentWithCaption
	LayoutPictureWithCaption
)

// placeholderSpec positions a placeholder as fractions of the slide size.
type placeholderSpec struct {
	kind string // p:ph type; empty for an object placeholder
	idx  int
	name string
	x, y float64
	w, h float64
}

type layoutSpec struct {
	name         string
	kind         string
	placeholders []placeholderSpec
}

var (
	titlePh = placeholderSpec{kind: "title", name: "Title", x: 0.05, y: 0.0366, w: 0.9, h: 0.1524}
	bodyPh  = placeholderSpec{idx: 1, name: "Content Placeholder", x: 0.05, y: 0.2134, w: 0.9, h: 0.6035}

	masterBodyPh = placeholderSpec{kind: "body", idx: 1, name: "Text Placeholder", x: 0.05, y: 0.2134, w: 0.9, h: 0.6035}
)

var layouts = [...]layoutSpec{
	LayoutTitle: {"Title Slide", "title", []placeholderSpec{
		{kind: "ctrTitle", name: "Title", x: 0.075, y: 0.284, w: 0.85, h: 0.196},
		{kind: "subTitle", idx: 1, name: "Subtitle", x: 0.15, y: 0.518, w: 0.7, h: 0.2337},
	}},
	LayoutTitleAndContent: {"Title and Content", "obj", []placeholderSpec{titlePh, bodyPh}},
	LayoutSectionHeader: {"Section Header", "secHead", []placeholderSpec{
		{kind: "title", name: "Title", x: 0.079, y: 0.5876, w: 0.85, h: 0.1816},
		{kind: "body", idx: 1, name: "Text Placeholder", x: 0.079, y: 0.3876, w: 0.85, h: 0.2},
	}},
	LayoutTwoContent: {"Two Content", "twoObj", []placeholderSpec{
		titlePh,
		{idx: 1, name: "Content Placeholder", x: 0.05, y: 0.2134, w: 0.4417, h: 0.6035},
		{idx: 2, name: "Content Placeholder", x: 0.5083, y: 0.2134, w: 0.4417, h: 0.6035},
	}},
	LayoutComparison: {"Comparison", "twoTxTwoObj", []placeholderSpec{
		titlePh,
		{kind: "body", idx: 1, name: "Text Placeholder", x: 0.05, y: 0.2046, w: 0.4419, h: 0.0845},
		{idx: 2, name: "Content Placeholder", x: 0.05, y: 0.2891, w: 0.4419, h: 0.522},
		{kind: "body", idx: 3, name: "Text Placeholder", x: 0.508, y: 0.2046, w: 0.4421, h: 0.0845},
		{idx: 4, name: "Content Placeholder", x: 0.508, y: 0.2891, w: 0.4421, h: 0.522},
	}},
	LayoutTitleOnly: {"Title Only", "titleOnly", []placeholderSpec{titlePh}},
	LayoutBlank:     {"Blank", "blank", nil},
	LayoutContentWithCaption: {"Content with Caption", "objTx", []placeholderSpec{
		{kind: "title", name: "Title", x: 0.05, y: 0.0364, w: 0.3292, h: 0.155},
		{idx: 1, name: "Content Placeholder", x: 0.3912, y: 0.0366, w: 0.5588, h: 0.7808},
		{kind: "body", idx: 2, name: "Text Placeholder", x: 0.05, y: 0.1914, w: 0.3292, h: 0.626},
	}},
	LayoutPictureWithCaption: {"Picture with Caption", "picTx", []placeholderSpec{
		{kind: "title", name: "Title", x: 0.196, y: 0.7, w: 0.6, h: 0.0827},
		{kind: "pic", idx: 1, name: "Picture Placeholder", x: 0.196, y: 0.0894, w: 0.6, h: 0.6},
		{kind: "body", idx: 2, name: "Text Placeholder", x: 0.196, y: 0.7827, w: 0.6, h: 0.1173},
	}},
}

// LayoutCount is the number of built-in layouts.
const LayoutCount = len(layouts)

// LayoutName returns the display name of a built-in layout.
func LayoutName(index int) string {
	if index < 0 || index >= LayoutCount {
		return ""
	}
	return layouts[index].name
}

func (p placeholderSpec) ph() *xPlaceholder {
	ph := &xPlaceholder{Type: p.kind}
	if p.idx > 0 {
		ph.Idx = strconv.Itoa(p.idx)
	}
	return ph
}

func (p placeholderSpec) xfrm(cx, cy int64) *xXfrm {
	scale := func(f float64, total int64) int64 { return int64(math.Round(f * float64(total))) }
	return &xXfrm{
		Off: xOff{X: scale(p.x, cx), Y: scale(p.y, cy)},
		Ext: xExt{Cx: scale(p.w, cx), Cy: scale(p.h, cy)},
	}
}

// shape returns a placeholder shape. Slides omit the geometry and inherit it from the layout.
func (p placeholderSpec) shape(id int, xfrm *xXfrm) *xShape {
	return &xShape{
		NvSpPr: xNvSpPr{
			CNvPr:   xCNvPr{ID: id, Name: p.name + " " + strconv.Itoa(id-1)},
			CNvSpPr: xCNvSpPr{Locks: &xSpLocks{NoGrp: "1"}},
			NvPr:    xNvPr{Ph: p.ph()},
		},
		SpPr:   xSpPr{Xfrm: xfrm},
		TxBody: &xTxBody{Paras: []xPara{{}}},
	}
}

func emptyTree() xSpTree {
	return xSpTree{NvGrpSpPr: xNvGrpSpPr{CNvPr: xCNvPr{ID: 1}}}
}

func namespaces() xNamespaces {
	return xNamespaces{A: ooxml.NsA, R: ooxml.NsR, P: ooxml.NsP}
}

func layoutXML(index int, cx, cy int64) xLayout {
	spec := layouts[index]
	tree := emptyTree()
	for i, p := range spec.placeholders {
		tree.Shapes = append(tree.Shapes, p.shape(i+2, p.xfrm(cx, cy)))
	}
	return xLayout{
		xNamespaces: namespaces(),
		Type:        spec.kind,
		Preserve:    "1",
		CSld:        xCSld{Name: spec.name, SpTree: tree},
		ClrMap:      xInner{Inner: "<a:masterClrMapping/>"},
	}
}

func masterXML(cx, cy int64, layoutRels []string) xMaster {
	tree := emptyTree()
	tree.Shapes = []any{
		titlePh.shape(2, titlePh.xfrm(cx, cy)),
		masterBodyPh.shape(3, masterBodyPh.xfrm(cx, cy)),
	}
	m := xMaster{
		xNamespaces: namespaces(),
		CSld: xCSld{
			Bg:     &xInner{Inner: `<p:bgRef idx="1001"><a:schemeClr val="bg1"/></p:bgRef>`},
			SpTree: tree,
		},
		ClrMap: xClrMap{
			Bg1: "lt1", Tx1: "dk1", Bg2: "lt2", Tx2: "dk2",
			Accent1: "accent1", Accent2: "accent2", Accent3: "accent3",
			Accent4: "accent4", Accent5: "accent5", Accent6: "accent6",
			Hlink: "hlink", FolHlink: "folHlink",
		},
		TxStyles: xInner{Inner: masterTextStyles},
	}
	for i, rID := range layoutRels {
		m.LayoutIDs.IDs = append(m.LayoutIDs.IDs, xRelID{ID: firstLayoutID + uint32(i), RID: rID})
	}
	return m
}

const masterTextStyles = `<p:titleStyle><a:lvl1pPr algn="l" defTabSz="914400" rtl="0" eaLnBrk="1" latinLnBrk="0" hangingPunct="1"><a:lnSpc><a:spcPct val="90000"/></a:lnSpc><a:spcBef><a:spcPct val="0"/></a:spcBef><a:buNone/><a:defRPr sz="4400" kern="1200"><a:solidFill><a:schemeClr val="tx1"/></a:solidFill><a:latin typeface="+mj-lt"/><a:ea typeface="+mj-ea"/><a:cs typeface="+mj-cs"/></a:defRPr></a:lvl1pPr></p:titleStyle>` +
	`<p:bodyStyle><a:lvl1pPr marL="228600" indent="-228600" algn="l" defTabSz="914400" rtl="0" eaLnBrk="1" latinLnBrk="0" hangingPunct="1"><a:lnSpc><a:spcPct val="90000"/></a:lnSpc><a:spcBef><a:spcPts val="1000"/></a:spcBef><a:buFont typeface="Arial"/><a:buChar char="&#8226;"/><a:defRPr sz="2800" kern="1200"><a:solidFill><a:schemeClr val="tx1"/></a:solidFill><a:latin typeface="+mn-lt"/><a:ea typeface="+mn-ea"/><a:cs typeface="+mn-cs"/></a:defRPr></a:lvl1pPr>` +
	`<a:lvl2pPr marL="685800" indent="-228600" algn="l" defTabSz="914400" rtl="0" eaLnBrk="1" latinLnBrk="0" hangingPunct="1"><a:lnSpc><a:spcPct val="90000"/></a:lnSpc><a:spcBef><a:spcPts val="500"/></a:spcBef><a:buFont typeface="Arial"/><a:buChar char="&#8226;"/><a:defRPr sz="2400" kern="1200"><a:solidFill><a:schemeClr val="tx1"/></a:solidFill><a:latin typeface="+mn-lt"/><a:ea typeface="+mn-ea"/><a:cs typeface="+mn-cs"/></a:defRPr></a:lvl2pPr></p:bodyStyle>` +
	`<p:otherStyle><a:defPPr><a:defRPr lang="en-US"/></a:defPPr><a:lvl1pPr marL="0" algn="l" defTabSz="914400" rtl="0" eaLnBrk="1" latinLnBrk="0" hangingPunct="1"><a:defRPr sz="1800" kern="1200"><a:solidFill><a:schemeClr val="tx1"/></a:solidFill><a:latin typeface="+mn-lt"/><a:ea typeface="+mn-ea"/><a:cs typeface="+mn-cs"/></a:defRPr></a:lvl1pPr></p:otherStyle>`

const defaultTextStyle = `<a:defPPr><a:defRPr lang="en-US"/></a:defPPr><a:lvl1pPr marL="0" algn="l" defTabSz="914400" rtl="0" eaLnBrk="1" latinLnBrk="0" hangingPunct="1"><a:defRPr sz="1800" kern="1200"><a:solidFill><a:schemeClr val="tx1"/></a:solidFill><a:latin typeface="+mn-lt"/><a:ea typeface="+mn-ea"/><a:cs typeface="+mn-cs"/></a:defRPr></a:lvl1pPr>`
