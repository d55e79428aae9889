package ooxml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"
)

// partTime is stamped on every zip entry so identical input yields identical bytes.
var partTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

type part struct {
	name string
	data []byte
}

// Package accumulates the parts of an OPC container and writes them as a zip archive.
// Parts are written in insertion order after [Content_Types].xml.
type Package struct {
	parts     []part
	names     map[string]bool
	defaults  map[string]string
	overrides map[string]string
}

// NewPackage returns an empty package with the rels and xml default content types registered.
func NewPackage() *Package {
	return &Package{
		names: make(map[string]bool),
		defaults: map[string]string{
			"rels": TypeRelationships,
			"xml":  TypeXML,
		},
		overrides: make(map[string]string),
	}
}

// AddPart adds a raw part. A non-empty contentType registers an override for the part name.
func (p *Package) AddPart(name, contentType string, data []byte) error {
	name = strings.TrimPrefix(name, "/")
	if p.names[name] {
		return fmt.Errorf("duplicate part %q", name)
	}
	p.names[name] = true
	p.parts = append(p.parts, part{name: name, data: data})
	if contentType != "" {
		p.overrides["/"+name] = contentType
	}
	return nil
}

// AddXMLPart marshals v with an XML declaration and adds it as a part.
func (p *Package) AddXMLPart(name, contentType string, v any) error {
	data, err := MarshalXML(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	return p.AddPart(name, contentType, data)
}

// AddDefault registers a default content type for a file extension (without the dot).
func (p *Package) AddDefault(ext, contentType string) {
	p.defaults[strings.ToLower(ext)] = contentType
}

// Has reports whether a part with the given name was added.
func (p *Package) Has(name string) bool {
	return p.names[strings.TrimPrefix(name, "/")]
}

// Bytes builds the zip archive in memory.
func (p *Package) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes the zip archive to w.
func (p *Package) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	types, err := MarshalXML(p.contentTypes())
	if err != nil {
		return cw.n, err
	}
	if err := writeEntry(zw, "[Content_Types].xml", types); err != nil {
		return cw.n, err
	}
	for _, pt := range p.parts {
		if err := writeEntry(zw, pt.name, pt.data); err != nil {
			return cw.n, err
		}
	}

	if err := zw.Close(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

func writeEntry(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: partTime,
	})
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

type xContentTypes struct {
	XMLName   xml.Name    `xml:"Types"`
	Xmlns     string      `xml:"xmlns,attr"`
	Defaults  []xDefault  `xml:"Default"`
	Overrides []xOverride `xml:"Override"`
}

type xDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

func (p *Package) contentTypes() xContentTypes {
	ct := xContentTypes{Xmlns: nsContentTypes}

	exts := make([]string, 0, len(p.defaults))
	for ext := range p.defaults {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	for _, ext := range exts {
		ct.Defaults = append(ct.Defaults, xDefault{Extension: ext, ContentType: p.defaults[ext]})
	}

	for _, pt := range p.parts {
		name := "/" + pt.name
		if typ, ok := p.overrides[name]; ok {
			ct.Overrides = append(ct.Overrides, xOverride{PartName: name, ContentType: typ})
		}
	}
	return ct
}

// MarshalXML encodes v with a standalone XML declaration.
func MarshalXML(v any) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	header := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"
	return append([]byte(header), data...), nil
}

// RelsPath returns the relationships part name for a source part,
// e.g. "word/document.xml" -> "word/_rels/document.xml.rels".
func RelsPath(source string) string {
	dir, file := path.Split(strings.TrimPrefix(source, "/"))
	return dir + "_rels/" + file + ".rels"
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}
