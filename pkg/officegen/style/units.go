// Package style provides the unit and style primitives shared by the rendering engines.
package style

import (
	"math"
	"strings"
)

// Unit is a length unit accepted by engine operations.
type Unit string

const (
	// Points is 1/72 inch.
	Points Unit = "pt"
	// Inches is the imperial inch.
	Inches Unit = "in"
	// Centimeters is the metric centimeter.
	Centimeters Unit = "cm"
	// Millimeters is the metric millimeter.
	Millimeters Unit = "mm"
	// Pixels is a device pixel at 96 DPI.
	Pixels Unit = "px"
)

// EMU (English Metric Units) conversion factors used by DrawingML.
// 1 inch = 914400 EMU, 1 inch = 96 pixels at 96 DPI
// Therefore: 914400 / 96 = 9525 EMU per pixel
const (
	EMUPerInch       = 914400
	EMUPerCentimeter = 360000
	EMUPerPoint      = 12700
	EMUPerPixel      = 9525
)

// TwipsPerPoint is the number of twentieths of a point in a point.
// WordprocessingML expresses page geometry and spacing in twips.
const TwipsPerPoint = 20

// ParseUnit maps a unit name to a Unit. Unrecognized names fall back to def.
func ParseUnit(name string, def Unit) Unit {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pt", "pts", "point", "points":
		return Points
	case "in", "inch", "inches":
		return Inches
	case "cm", "centimeter", "centimeters":
		return Centimeters
	case "mm", "millimeter", "millimeters":
		return Millimeters
	case "px", "pixel", "pixels":
		return Pixels
	default:
		return def
	}
}

// ToPoints converts value expressed in unit to points.
func ToPoints(value float64, unit Unit) float64 {
	switch unit {
	case Inches:
		return value * 72
	case Centimeters:
		return value * 72 / 2.54
	case Millimeters:
		return value * 72 / 25.4
	case Pixels:
		return value * 72 / 96
	default:
		return value
	}
}

// ToEMU converts value expressed in unit to EMU, rounded to the nearest integer.
func ToEMU(value float64, unit Unit) int64 {
	var emu float64
	switch unit {
	case Inches:
		emu = value * EMUPerInch
	case Centimeters:
		emu = value * EMUPerCentimeter
	case Millimeters:
		emu = value * EMUPerCentimeter / 10
	case Pixels:
		emu = value * EMUPerPixel
	default:
		emu = value * EMUPerPoint
	}
	return int64(math.Round(emu))
}

// ToTwips converts value expressed in unit to twips, rounded to the nearest integer.
func ToTwips(value float64, unit Unit) int64 {
	return int64(math.Round(ToPoints(value, unit) * TwipsPerPoint))
}

// ToHalfPoints converts a font size in points to the half-point units used by WordprocessingML.
func ToHalfPoints(points float64) int {
	return int(math.Round(points * 2))
}

// ToCentipoints converts a font size in points to the hundredths of a point used by DrawingML.
func ToCentipoints(points float64) int {
	return int(math.Round(points * 100))
}

// EMUToPixels converts EMU to pixels at 96 DPI.
func EMUToPixels(emu int64) int {
	return int(emu / EMUPerPixel)
}
