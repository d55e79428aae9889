package ppt

import (
	"fmt"
	"io"

	"github.com/nowaywastaken/AI-Office/pkg/officegen/ooxml"
)

const (
	presentationPart = "ppt/presentation.xml"
	masterPart       = "ppt/slideMasters/slideMaster1.xml"
	themePart        = "ppt/theme/theme1.xml"

	firstMasterID = 2147483648
	firstLayoutID = firstMasterID + 1
	firstSlideID  = 256

	notesWidth  = 6858000
	notesHeight = 9144000
)

// Bytes renders the presentation container. The engine cannot be used afterwards.
func (e *Engine) Bytes() ([]byte, error) {
	pkg, err := e.render()
	if err != nil {
		return nil, err
	}
	return pkg.Bytes()
}

// WriteTo renders the presentation container to w. The engine cannot be used afterwards.
func (e *Engine) WriteTo(w io.Writer) (int64, error) {
	pkg, err := e.render()
	if err != nil {
		return 0, err
	}
	return pkg.WriteTo(w)
}

func (e *Engine) render() (*ooxml.Package, error) {
	if e.done {
		return nil, ErrFinalized
	}
	e.done = true

	pkg := ooxml.NewPackage()
	presRels := ooxml.NewRelationships()
	pres := xPresentation{
		xNamespaces:     namespaces(),
		SaveSubsetFonts: "1",
		SlideSize:       xSlideSize{Cx: e.width, Cy: e.height},
		NotesSize:       xExt{Cx: notesWidth, Cy: notesHeight},
		DefaultText:     xInner{Inner: defaultTextStyle},
	}
	pres.MasterIDs.IDs = []xRelID{{ID: firstMasterID, RID: presRels.Add(ooxml.RelSlideMaster, "slideMasters/slideMaster1.xml")}}
	if len(e.slides) > 0 {
		pres.SlideIDs = &xSlideIDList{}
		for i := range e.slides {
			rID := presRels.Add(ooxml.RelSlide, fmt.Sprintf("slides/slide%d.xml", i+1))
			pres.SlideIDs.IDs = append(pres.SlideIDs.IDs, xRelID{ID: uint32(firstSlideID + i), RID: rID})
		}
	}
	presRels.Add(ooxml.RelPresProps, "presProps.xml")
	presRels.Add(ooxml.RelViewProps, "viewProps.xml")
	presRels.Add(ooxml.RelTheme, "theme/theme1.xml")
	presRels.Add(ooxml.RelTableStyles, "tableStyles.xml")

	if err := pkg.AddXMLPart(presentationPart, ooxml.TypePresentation, pres); err != nil {
		return nil, err
	}

	for i, s := range e.slides {
		name := fmt.Sprintf("ppt/slides/slide%d.xml", i+1)
		tree := emptyTree()
		tree.Shapes = s.shapes
		sld := xSlide{
			xNamespaces: namespaces(),
			CSld:        xCSld{SpTree: tree},
			ClrMap:      xInner{Inner: "<a:masterClrMapping/>"},
		}
		if err := pkg.AddXMLPart(name, ooxml.TypeSlide, sld); err != nil {
			return nil, err
		}
		if err := pkg.AddRels(name, s.rels); err != nil {
			return nil, err
		}
	}

	masterRels := ooxml.NewRelationships()
	layoutRIDs := make([]string, 0, LayoutCount)
	for i := range LayoutCount {
		name := fmt.Sprintf("ppt/slideLayouts/slideLayout%d.xml", i+1)
		if err := pkg.AddXMLPart(name, ooxml.TypeSlideLayout, layoutXML(i, e.width, e.height)); err != nil {
			return nil, err
		}
		rels := ooxml.NewRelationships()
		rels.Add(ooxml.RelSlideMaster, "../slideMasters/slideMaster1.xml")
		if err := pkg.AddRels(name, rels); err != nil {
			return nil, err
		}
		layoutRIDs = append(layoutRIDs, masterRels.Add(ooxml.RelSlideLayout, fmt.Sprintf("../slideLayouts/slideLayout%d.xml", i+1)))
	}
	masterRels.Add(ooxml.RelTheme, "../theme/theme1.xml")
	if err := pkg.AddXMLPart(masterPart, ooxml.TypeSlideMaster, masterXML(e.width, e.height, layoutRIDs)); err != nil {
		return nil, err
	}
	if err := pkg.AddRels(masterPart, masterRels); err != nil {
		return nil, err
	}

	static := []struct {
		name, contentType, data string
	}{
		{themePart, ooxml.TypeTheme, themeXML},
		{"ppt/presProps.xml", ooxml.TypePresProps, presPropsXML},
		{"ppt/viewProps.xml", ooxml.TypeViewProps, viewPropsXML},
		{"ppt/tableStyles.xml", ooxml.TypeTableStyles, tableStylesXML},
	}
	for _, p := range static {
		if err := pkg.AddPart(p.name, p.contentType, []byte(p.data)); err != nil {
			return nil, err
		}
	}

	for _, m := range e.media {
		pkg.AddDefault(m.img.Ext, m.img.ContentType)
		if err := pkg.AddPart("ppt/"+m.name, "", m.img.Data); err != nil {
			return nil, err
		}
	}

	if err := pkg.AddRels(presentationPart, presRels); err != nil {
		return nil, err
	}
	if err := pkg.AddDocProps(presentationPart, e.title); err != nil {
		return nil, err
	}
	return pkg, nil
}
