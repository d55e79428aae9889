// Package officegen renders document IR into word-processing, spreadsheet and slide-deck containers.
package officegen

import (
	"fmt"
	"strings"
)

// DocType selects the rendering engine.
type DocType string

const (
	// Word renders a TextDocument as .docx.
	Word DocType = "word"
	// Excel renders a Spreadsheet as .xlsx.
	Excel DocType = "excel"
	// PPT renders a SlideDeck as .pptx.
	PPT DocType = "ppt"
)

// DocTypes lists every supported document type.
var DocTypes = []DocType{Word, Excel, PPT}

// ParseDocType resolves a document type name. The container extensions docx, xlsx and pptx
// are accepted as aliases.
func ParseDocType(name string) (DocType, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "word", "docx":
		return Word, nil
	case "excel", "xlsx":
		return Excel, nil
	case "ppt", "pptx", "powerpoint":
		return PPT, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDocumentType, name)
	}
}

// Extension returns the container file extension including the leading dot.
func (t DocType) Extension() string {
	switch t {
	case Word:
		return ".docx"
	case Excel:
		return ".xlsx"
	case PPT:
		return ".pptx"
	default:
		return ""
	}
}

// Label returns a human-readable name used in result messages.
func (t DocType) Label() string {
	switch t {
	case Word:
		return "Word document"
	case Excel:
		return "Excel file"
	case PPT:
		return "Presentation"
	default:
		return string(t)
	}
}
