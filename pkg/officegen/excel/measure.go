package excel

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/width"
)

// DisplayWidth returns the number of character columns s occupies.
// East Asian wide and fullwidth runes count as two.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// stringify returns the text a cell value displays as. ok is false for values
// that have no natural text form; such values are written but not measured.
func stringify(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case int32, int16, int8, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	case time.Time:
		return x.Format(time.DateOnly), true
	case fmt.Stringer:
		return x.String(), true
	default:
		return "", false
	}
}
