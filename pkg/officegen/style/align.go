package style

import "strings"

// Alignment is a horizontal paragraph alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

var alignmentNames = map[string]Alignment{
	"left":    AlignLeft,
	"center":  AlignCenter,
	"centre":  AlignCenter,
	"right":   AlignRight,
	"justify": AlignJustify,
}

// LookupAlignment resolves an alignment name. ok is false for unrecognized names.
func LookupAlignment(name string) (Alignment, bool) {
	a, ok := alignmentNames[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}

// ResolveAlignment resolves an alignment name, falling back to AlignLeft.
func ResolveAlignment(name string) Alignment {
	a, _ := LookupAlignment(name)
	return a
}

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// WordValue returns the w:jc value.
func (a Alignment) WordValue() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "both"
	default:
		return "left"
	}
}

// DrawingValue returns the a:pPr algn value.
func (a Alignment) DrawingValue() string {
	switch a {
	case AlignCenter:
		return "ctr"
	case AlignRight:
		return "r"
	case AlignJustify:
		return "just"
	default:
		return "l"
	}
}

// LineSpacingRule selects how a line spacing value is interpreted.
type LineSpacingRule int

const (
	LineSpacingMultiple LineSpacingRule = iota
	LineSpacingSingle
	LineSpacingOneAndHalf
	LineSpacingDouble
	LineSpacingExact
	LineSpacingAtLeast
)

var lineSpacingRuleNames = map[string]LineSpacingRule{
	"multiple":     LineSpacingMultiple,
	"single":       LineSpacingSingle,
	"1.5":          LineSpacingOneAndHalf,
	"one-and-half": LineSpacingOneAndHalf,
	"one_and_half": LineSpacingOneAndHalf,
	"double":       LineSpacingDouble,
	"exact":        LineSpacingExact,
	"exactly":      LineSpacingExact,
	"at-least":     LineSpacingAtLeast,
	"at_least":     LineSpacingAtLeast,
}

// LookupLineSpacingRule resolves a rule name. ok is false for unrecognized names.
func LookupLineSpacingRule(name string) (LineSpacingRule, bool) {
	r, ok := lineSpacingRuleNames[strings.ToLower(strings.TrimSpace(name))]
	return r, ok
}

// UsesPoints reports whether the spacing value is a length in points rather than a multiplier.
func (r LineSpacingRule) UsesPoints() bool {
	return r == LineSpacingExact || r == LineSpacingAtLeast
}
