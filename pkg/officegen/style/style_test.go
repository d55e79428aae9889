package style

import (
	"errors"
	"math"
	"testing"
)

func TestToPoints(t *testing.T) {
	tests := []struct {
		value    float64
		unit     Unit
		expected float64
	}{
		{1, Inches, 72},
		{2.54, Centimeters, 72},
		{25.4, Millimeters, 72},
		{96, Pixels, 72},
		{12, Points, 12},
	}

	for _, tt := range tests {
		result := ToPoints(tt.value, tt.unit)
		if result < tt.expected-1e-9 || result > tt.expected+1e-9 {
			t.Errorf("ToPoints(%v, %q) = %v, expected %v", tt.value, tt.unit, result, tt.expected)
		}
	}
}

func TestToEMU(t *testing.T) {
	tests := []struct {
		value    float64
		unit     Unit
		expected int64
	}{
		{1, Inches, 914400},
		{13.333, Inches, 12191695},
		{7.5, Inches, 6858000},
		{1, Centimeters, 360000},
		{10, Millimeters, 360000},
		{1, Points, 12700},
		{1, Pixels, 9525},
	}

	for _, tt := range tests {
		result := ToEMU(tt.value, tt.unit)
		if result != tt.expected {
			t.Errorf("ToEMU(%v, %q) = %d, expected %d", tt.value, tt.unit, result, tt.expected)
		}
	}
}

func TestEMUToPixels(t *testing.T) {
	if got := EMUToPixels(ToEMU(6, Inches)); got != 576 {
		t.Errorf("EMUToPixels(6in) = %d, expected 576", got)
	}
	if got := EMUToPixels(9524); got != 0 {
		t.Errorf("EMUToPixels(9524) = %d, expected 0", got)
	}
}

func TestToTwips(t *testing.T) {
	tests := []struct {
		value    float64
		unit     Unit
		expected int64
	}{
		{2.54, Centimeters, 1440},
		{1, Inches, 1440},
		{12, Points, 240},
		{21, Centimeters, 11906},
	}

	for _, tt := range tests {
		result := ToTwips(tt.value, tt.unit)
		if result != tt.expected {
			t.Errorf("ToTwips(%v, %q) = %d, expected %d", tt.value, tt.unit, result, tt.expected)
		}
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		name     string
		expected Unit
	}{
		{"inches", Inches},
		{"IN", Inches},
		{"cm", Centimeters},
		{"pt", Points},
		{"furlong", Centimeters},
		{"", Centimeters},
	}

	for _, tt := range tests {
		result := ParseUnit(tt.name, Centimeters)
		if result != tt.expected {
			t.Errorf("ParseUnit(%q) = %q, expected %q", tt.name, result, tt.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected RGB
		wantErr  bool
	}{
		{"#FF0000", RGB{R: 255}, false},
		{"00ff7f", RGB{G: 255, B: 127}, false},
		{"#1f2E3d", RGB{R: 0x1f, G: 0x2e, B: 0x3d}, false},
		{"notacolor", RGB{}, true},
		{"#FFF", RGB{}, true},
		{"GG0000", RGB{}, true},
		{"#+12345", RGB{}, true},
		{"", RGB{}, true},
	}

	for _, tt := range tests {
		result, err := ParseColor(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("ParseColor(%q) error = %v, expected ErrInvalidColor", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColor(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseColor(%q) = %+v, expected %+v", tt.input, result, tt.expected)
		}
	}
}

func TestColorHex(t *testing.T) {
	if hex, ok, err := ColorHex("#00aa11"); !ok || err != nil || hex != "00AA11" {
		t.Errorf("ColorHex(#00aa11) = %q, %v, %v", hex, ok, err)
	}
	if _, ok, err := ColorHex(""); ok || err != nil {
		t.Errorf("ColorHex(\"\") = %v, %v, expected not ok without error", ok, err)
	}
	if _, ok, err := ColorHex("notacolor"); ok || err == nil {
		t.Errorf("ColorHex(notacolor) = %v, %v, expected an error", ok, err)
	}
}

func TestResolveAlignment(t *testing.T) {
	tests := []struct {
		name     string
		expected Alignment
		word     string
		drawing  string
	}{
		{"left", AlignLeft, "left", "l"},
		{"center", AlignCenter, "center", "ctr"},
		{"Right", AlignRight, "right", "r"},
		{"justify", AlignJustify, "both", "just"},
		{"diagonal", AlignLeft, "left", "l"},
		{"", AlignLeft, "left", "l"},
	}

	for _, tt := range tests {
		result := ResolveAlignment(tt.name)
		if result != tt.expected {
			t.Errorf("ResolveAlignment(%q) = %v, expected %v", tt.name, result, tt.expected)
		}
		if result.WordValue() != tt.word {
			t.Errorf("%v.WordValue() = %q, expected %q", result, result.WordValue(), tt.word)
		}
		if result.DrawingValue() != tt.drawing {
			t.Errorf("%v.DrawingValue() = %q, expected %q", result, result.DrawingValue(), tt.drawing)
		}
	}

	if _, ok := LookupAlignment("diagonal"); ok {
		t.Error("LookupAlignment(diagonal) reported ok")
	}
}

func TestLookupLineSpacingRule(t *testing.T) {
	tests := []struct {
		name     string
		expected LineSpacingRule
		points   bool
	}{
		{"single", LineSpacingSingle, false},
		{"double", LineSpacingDouble, false},
		{"1.5", LineSpacingOneAndHalf, false},
		{"one-and-half", LineSpacingOneAndHalf, false},
		{"multiple", LineSpacingMultiple, false},
		{"exact", LineSpacingExact, true},
		{"at_least", LineSpacingAtLeast, true},
		{"at-least", LineSpacingAtLeast, true},
	}

	for _, tt := range tests {
		result, ok := LookupLineSpacingRule(tt.name)
		if !ok || result != tt.expected {
			t.Errorf("LookupLineSpacingRule(%q) = %v, %v, expected %v", tt.name, result, ok, tt.expected)
		}
		if result.UsesPoints() != tt.points {
			t.Errorf("%q UsesPoints() = %v, expected %v", tt.name, result.UsesPoints(), tt.points)
		}
	}
}

func TestCheckRange(t *testing.T) {
	tests := []struct {
		value   float64
		wantErr bool
	}{
		{0, false},
		{10, false},
		{-0.5, true},
		{10.5, true},
		{math.NaN(), true},
		{math.Inf(1), true},
	}

	for _, tt := range tests {
		err := CheckRange("size", tt.value, 0, 10)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckRange(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrOutOfRange) {
			t.Errorf("CheckRange(%v) error = %v, expected ErrOutOfRange", tt.value, err)
		}
	}
}
