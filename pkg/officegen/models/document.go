// Package models defines the format-agnostic intermediate representation rendered by the engines.
package models

// StyleGuide holds document-wide formatting defaults. Unset fields fall back to engine defaults.
type StyleGuide struct {
	// FontName is the body font family.
	FontName string `json:"font_name,omitempty"`
	// FontSize is the body font size in points.
	FontSize *float64 `json:"font_size,omitempty"`
	// LineSpacing is a line spacing multiplier.
	LineSpacing *float64 `json:"line_spacing,omitempty"`
	// Margin is the page margin in centimeters, applied to all four sides.
	Margin *float64 `json:"margin,omitempty"`
}

// ParagraphStyle is an explicit per-section style overriding the StyleGuide.
type ParagraphStyle struct {
	FontName        string   `json:"font_name,omitempty"`
	FontSize        *float64 `json:"font_size,omitempty"`
	Bold            *bool    `json:"bold,omitempty"`
	Italic          *bool    `json:"italic,omitempty"`
	Underline       *bool    `json:"underline,omitempty"`
	Color           string   `json:"color,omitempty"`
	Alignment       string   `json:"alignment,omitempty"`
	LineSpacing     *float64 `json:"line_spacing,omitempty"`
	LineSpacingRule string   `json:"line_spacing_rule,omitempty"`
	// SpaceBefore and SpaceAfter are in points.
	SpaceBefore *float64 `json:"space_before,omitempty"`
	SpaceAfter  *float64 `json:"space_after,omitempty"`
	// FirstLineIndent is in centimeters.
	FirstLineIndent *float64 `json:"first_line_indent,omitempty"`
}

// Section is one heading/content block of a TextDocument.
type Section struct {
	// Heading is the optional section heading.
	Heading string `json:"heading,omitempty"`
	// Content is the section body text.
	Content string `json:"content"`
	// Level is the heading depth (1-3).
	Level int `json:"level"`
	// Style overrides the document style guide for this section's paragraph.
	Style *ParagraphStyle `json:"style,omitempty"`
}

// TextDocument is the IR for a word-processing document.
type TextDocument struct {
	// Title is rendered as the first, level-1 heading.
	Title string `json:"title"`
	// Sections are rendered in order.
	Sections []Section `json:"sections"`
	// Style is the optional document-wide style guide.
	Style *StyleGuide `json:"style,omitempty"`
}

// DefaultSectionLevel is used when a section omits its level.
const DefaultSectionLevel = 2

// MaxSectionLevel is the deepest heading level a section may declare.
const MaxSectionLevel = 3
