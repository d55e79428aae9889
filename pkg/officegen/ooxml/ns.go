// Package ooxml writes Open Packaging Convention containers shared by the docx and pptx engines.
package ooxml

// XML namespaces used in WordprocessingML, PresentationML and DrawingML parts.
const (
	NsW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	NsP   = "http://schemas.openxmlformats.org/presentationml/2006/main"
	NsA   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	NsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	NsWP  = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	NsPic = "http://schemas.openxmlformats.org/drawingml/2006/picture"
	NsTbl = "http://schemas.openxmlformats.org/drawingml/2006/table"

	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsCoreProps     = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsExtendedProps = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsDC            = "http://purl.org/dc/elements/1.1/"
	nsDCTerms       = "http://purl.org/dc/terms/"
)

// Relationship types.
const (
	RelOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RelCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	RelExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	RelStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	RelImage          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	RelTheme          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	RelSlide          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	RelSlideLayout    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	RelSlideMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	RelPresProps      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/presProps"
	RelViewProps      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/viewProps"
	RelTableStyles    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/tableStyles"
)

// Content types.
const (
	TypeRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	TypeXML           = "application/xml"
	TypeCoreProps     = "application/vnd.openxmlformats-package.core-properties+xml"
	TypeExtendedProps = "application/vnd.openxmlformats-officedocument.extended-properties+xml"

	TypeWordDocument = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	TypeWordStyles   = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"

	TypePresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	TypeSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	TypeSlideLayout  = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	TypeSlideMaster  = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	TypePresProps    = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	TypeViewProps    = "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"
	TypeTableStyles  = "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"
	TypeTheme        = "application/vnd.openxmlformats-officedocument.theme+xml"
)
