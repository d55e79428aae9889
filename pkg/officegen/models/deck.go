package models

import (
	"encoding/json"
	"strings"
)

// SlideKind is the declared kind of a slide.
type SlideKind string

const (
	SlideTitle     SlideKind = "title"
	SlideContent   SlideKind = "content"
	SlideTwoColumn SlideKind = "two-column"
	SlideImage     SlideKind = "image"
)

// ParseSlideKind normalizes a kind name. Empty and unrecognized names map to SlideContent.
func ParseSlideKind(s string) SlideKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "title":
		return SlideTitle
	case "two-column", "two_column", "twocolumn":
		return SlideTwoColumn
	case "image":
		return SlideImage
	default:
		return SlideContent
	}
}

// Lines is slide body content. It decodes from either a JSON string or an array of strings;
// a single string becomes a one-element list.
type Lines []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *Lines) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*l = Lines{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = many
	return nil
}

// Slide is one slide of a SlideDeck.
type Slide struct {
	// Kind is the declared slide kind (content when omitted).
	Kind SlideKind `json:"kind"`
	// Title is the slide title.
	Title string `json:"title"`
	// Content holds the body lines.
	Content Lines `json:"content"`
	// Notes are optional speaker notes.
	Notes string `json:"notes,omitempty"`
}

// SlideDeck is the IR for a presentation.
type SlideDeck struct {
	// Title is the deck title shown on the title slide.
	Title string `json:"title"`
	// Subtitle is the optional title-slide subtitle.
	Subtitle string `json:"subtitle,omitempty"`
	// Slides are rendered in declared order.
	Slides []Slide `json:"slides"`
}
