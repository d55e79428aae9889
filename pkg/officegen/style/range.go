package style

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange indicates a numeric style value the container format cannot represent.
var ErrOutOfRange = errors.New("style value out of range")

// CheckRange returns an error wrapping ErrOutOfRange unless lo <= v <= hi.
// NaN and infinities are always rejected.
func CheckRange(name string, v, lo, hi float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < lo || v > hi {
		return fmt.Errorf("%w: %s %v not in [%v, %v]", ErrOutOfRange, name, v, lo, hi)
	}
	return nil
}
