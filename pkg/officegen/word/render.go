package word

import (
	"io"

	"github.com/nowaywastaken/AI-Office/pkg/officegen/ooxml"
)

const documentPart = "word/document.xml"

// Bytes renders the document container. The engine cannot be used afterwards.
func (e *Engine) Bytes() ([]byte, error) {
	pkg, err := e.render()
	if err != nil {
		return nil, err
	}
	return pkg.Bytes()
}

// WriteTo renders the document container to w. The engine cannot be used afterwards.
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

	doc := xDocument{
		XmlnsW:   ooxml.NsW,
		XmlnsR:   ooxml.NsR,
		XmlnsWP:  ooxml.NsWP,
		XmlnsA:   ooxml.NsA,
		XmlnsPic: ooxml.NsPic,
		Body: xBody{
			Blocks: e.blocks,
			SectPr: xSectPr{
				PgSz: xPageSize{W: e.page.width, H: e.page.height},
				PgMar: xPageMargins{
					Top:    e.page.top,
					Right:  e.page.right,
					Bottom: e.page.bottom,
					Left:   e.page.left,
					Header: headerFooterMargin,
					Footer: headerFooterMargin,
				},
			},
		},
	}

	pkg := ooxml.NewPackage()
	if err := pkg.AddXMLPart(documentPart, ooxml.TypeWordDocument, doc); err != nil {
		return nil, err
	}
	if err := pkg.AddPart("word/styles.xml", ooxml.TypeWordStyles, stylesXML()); err != nil {
		return nil, err
	}
	for _, m := range e.media {
		pkg.AddDefault(m.img.Ext, m.img.ContentType)
		if err := pkg.AddPart("word/"+m.name, "", m.img.Data); err != nil {
			return nil, err
		}
	}
	if err := pkg.AddRels(documentPart, e.rels); err != nil {
		return nil, err
	}
	if err := pkg.AddDocProps(documentPart, e.title); err != nil {
		return nil, err
	}
	return pkg, nil
}
