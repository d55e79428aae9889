package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidStructure indicates IR that fails schema validation.
var ErrInvalidStructure = errors.New("invalid structure")

// StructureError reports the IR field that failed validation.
type StructureError struct {
	Field  string
	Reason string
}

func (e *StructureError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %s", ErrInvalidStructure, e.Reason)
	}
	return fmt.Sprintf("%v: field %q: %s", ErrInvalidStructure, e.Field, e.Reason)
}

func (e *StructureError) Unwrap() error {
	return ErrInvalidStructure
}

// DecodeTextDocument validates and decodes a TextDocument from JSON.
// The style guide is accepted under either "style" or "style_guide".
func DecodeTextDocument(data []byte) (*TextDocument, error) {
	obj, err := decodeObject(data, "")
	if err != nil {
		return nil, err
	}

	doc := &TextDocument{}
	if err := field(obj, "title", "title", false, &doc.Title); err != nil {
		return nil, err
	}

	styleKey := "style"
	if _, ok := obj[styleKey]; !ok {
		styleKey = "style_guide"
	}
	if err := field(obj, styleKey, styleKey, false, &doc.Style); err != nil {
		return nil, err
	}

	var sections []json.RawMessage
	if err := field(obj, "sections", "sections", true, &sections); err != nil {
		return nil, err
	}
	doc.Sections = make([]Section, 0, len(sections))
	for i, raw := range sections {
		path := fmt.Sprintf("sections[%d]", i)
		sec, err := decodeSection(raw, path)
		if err != nil {
			return nil, err
		}
		doc.Sections = append(doc.Sections, sec)
	}

	return doc, nil
}

func decodeSection(raw json.RawMessage, path string) (Section, error) {
	var sec Section
	obj, err := decodeObject(raw, path)
	if err != nil {
		return sec, err
	}
	if err := field(obj, "heading", path+".heading", false, &sec.Heading); err != nil {
		return sec, err
	}
	if err := field(obj, "content", path+".content", true, &sec.Content); err != nil {
		return sec, err
	}

	var level *int
	if err := field(obj, "level", path+".level", false, &level); err != nil {
		return sec, err
	}
	switch {
	case level == nil || *level == 0:
		sec.Level = DefaultSectionLevel
	case *level < 1 || *level > MaxSectionLevel:
		return sec, &StructureError{Field: path + ".level", Reason: fmt.Sprintf("level %d outside 1-%d", *level, MaxSectionLevel)}
	default:
		sec.Level = *level
	}

	if err := field(obj, "style", path+".style", false, &sec.Style); err != nil {
		return sec, err
	}
	return sec, nil
}

// DecodeSpreadsheet validates and decodes a Spreadsheet from JSON.
// Integral numbers decode as int64, other numbers as float64.
func DecodeSpreadsheet(data []byte) (*Spreadsheet, error) {
	obj, err := decodeObject(data, "")
	if err != nil {
		return nil, err
	}

	sheet := &Spreadsheet{}
	if err := field(obj, "title", "title", false, &sheet.Title); err != nil {
		return nil, err
	}
	if err := field(obj, "headers", "headers", false, &sheet.Headers); err != nil {
		return nil, err
	}
	if err := field(obj, "formulas", "formulas", false, &sheet.Formulas); err != nil {
		return nil, err
	}

	var rows []json.RawMessage
	if err := field(obj, "rows", "rows", true, &rows); err != nil {
		return nil, err
	}
	sheet.Rows = make([][]any, 0, len(rows))
	for i, raw := range rows {
		var cells []json.RawMessage
		if err := json.Unmarshal(raw, &cells); err != nil {
			return nil, &StructureError{Field: fmt.Sprintf("rows[%d]", i), Reason: "expected an array"}
		}
		row := make([]any, len(cells))
		for j, cell := range cells {
			v, err := decodeScalar(cell)
			if err != nil {
				return nil, &StructureError{Field: fmt.Sprintf("rows[%d][%d]", i, j), Reason: err.Error()}
			}
			row[j] = v
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	return sheet, nil
}

func decodeScalar(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case nil, string, bool:
		return x, nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i, nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, errors.New("expected a scalar value")
	}
}

// DecodeSlideDeck validates and decodes a SlideDeck from JSON.
// A slide's kind is accepted under either "kind" or "type".
func DecodeSlideDeck(data []byte) (*SlideDeck, error) {
	obj, err := decodeObject(data, "")
	if err != nil {
		return nil, err
	}

	deck := &SlideDeck{}
	if err := field(obj, "title", "title", false, &deck.Title); err != nil {
		return nil, err
	}
	if err := field(obj, "subtitle", "subtitle", false, &deck.Subtitle); err != nil {
		return nil, err
	}

	var slides []json.RawMessage
	if err := field(obj, "slides", "slides", true, &slides); err != nil {
		return nil, err
	}
	deck.Slides = make([]Slide, 0, len(slides))
	for i, raw := range slides {
		path := fmt.Sprintf("slides[%d]", i)
		so, err := decodeObject(raw, path)
		if err != nil {
			return nil, err
		}

		var s Slide
		kindKey := "kind"
		if _, ok := so[kindKey]; !ok {
			kindKey = "type"
		}
		var kind string
		if err := field(so, kindKey, path+"."+kindKey, false, &kind); err != nil {
			return nil, err
		}
		s.Kind = ParseSlideKind(kind)
		if err := field(so, "title", path+".title", false, &s.Title); err != nil {
			return nil, err
		}
		if err := field(so, "content", path+".content", false, &s.Content); err != nil {
			return nil, err
		}
		if err := field(so, "notes", path+".notes", false, &s.Notes); err != nil {
			return nil, err
		}
		deck.Slides = append(deck.Slides, s)
	}

	return deck, nil
}

type object map[string]json.RawMessage

func decodeObject(data []byte, path string) (object, error) {
	var obj object
	if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
		return nil, &StructureError{Field: path, Reason: "expected an object"}
	}
	return obj, nil
}

// field decodes obj[key] into dst. A missing key or JSON null counts as absent.
func field[T any](obj object, key, path string, required bool, dst *T) error {
	raw, ok := obj[key]
	if !ok || isNull(raw) {
		if required {
			return &StructureError{Field: path, Reason: "required field is missing"}
		}
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &StructureError{Field: path, Reason: fmt.Sprintf("cannot use %s as %s", typeErr.Value, typeErr.Type)}
		}
		return &StructureError{Field: path, Reason: err.Error()}
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
