package ooxml

import (
	"encoding/xml"
	"strconv"
)

// Relationship is one entry of a .rels part.
type Relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// Relationships is the content of a .rels part. IDs are assigned sequentially as rId1, rId2, ...
type Relationships struct {
	XMLName xml.Name       `xml:"Relationships"`
	Xmlns   string         `xml:"xmlns,attr"`
	Items   []Relationship `xml:"Relationship"`
}

// NewRelationships returns an empty relationship set.
func NewRelationships() *Relationships {
	return &Relationships{Xmlns: nsRelationships}
}

// Add appends a relationship and returns its ID.
func (r *Relationships) Add(relType, target string) string {
	id := "rId" + strconv.Itoa(len(r.Items)+1)
	r.Items = append(r.Items, Relationship{ID: id, Type: relType, Target: target})
	return id
}

// Len returns the number of relationships.
func (r *Relationships) Len() int {
	return len(r.Items)
}

// AddRels writes rels as the relationships part for source.
func (p *Package) AddRels(source string, rels *Relationships) error {
	return p.AddXMLPart(RelsPath(source), "", rels)
}
