package style

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColor indicates a color string is not a 6-digit hex value.
var ErrInvalidColor = errors.New("invalid color")

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as six upper-case hex digits without a leading '#'.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ParseColor parses "#RRGGBB" or "RRGGBB".
func ParseColor(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// ColorHex resolves an optional color string to hex digits.
// Empty input yields ok=false with a nil error; malformed input yields ok=false and the parse error,
// so callers can keep their default and report the problem.
func ColorHex(s string) (hex string, ok bool, err error) {
	if strings.TrimSpace(s) == "" {
		return "", false, nil
	}
	c, err := ParseColor(s)
	if err != nil {
		return "", false, err
	}
	return c.Hex(), true, nil
}
