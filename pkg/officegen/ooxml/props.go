package ooxml

import "encoding/xml"

// Application is recorded in docProps/app.xml.
const Application = "AI-Office"

type xCoreProps struct {
	XMLName xml.Name `xml:"cp:coreProperties"`
	XmlnsCP string   `xml:"xmlns:cp,attr"`
	XmlnsDC string   `xml:"xmlns:dc,attr"`
	XmlnsDT string   `xml:"xmlns:dcterms,attr"`
	Title   string   `xml:"dc:title,omitempty"`
	Creator string   `xml:"dc:creator,omitempty"`
}

type xAppProps struct {
	XMLName     xml.Name `xml:"Properties"`
	Xmlns       string   `xml:"xmlns,attr"`
	Application string   `xml:"Application"`
}

// AddDocProps adds docProps/core.xml and docProps/app.xml together with the package-level
// relationships part pointing at them and at mainPart.
func (p *Package) AddDocProps(mainPart, title string) error {
	core := xCoreProps{
		XmlnsCP: nsCoreProps,
		XmlnsDC: nsDC,
		XmlnsDT: nsDCTerms,
		Title:   title,
		Creator: Application,
	}
	if err := p.AddXMLPart("docProps/core.xml", TypeCoreProps, core); err != nil {
		return err
	}
	app := xAppProps{Xmlns: nsExtendedProps, Application: Application}
	if err := p.AddXMLPart("docProps/app.xml", TypeExtendedProps, app); err != nil {
		return err
	}

	rels := NewRelationships()
	rels.Add(RelOfficeDocument, mainPart)
	rels.Add(RelCoreProps, "docProps/core.xml")
	rels.Add(RelExtendedProps, "docProps/app.xml")
	return p.AddRels("", rels)
}
