// Package cellref converts between A1-style cell references and one-based coordinates.
package cellref

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedCellReference indicates a string is not a valid A1-style cell reference.
var ErrMalformedCellReference = errors.New("malformed cell reference")

// Parse splits a reference such as "B7" into its one-based row and column.
// Letters are case-insensitive; the column uses bijective base-26 ("A" = 1, "Z" = 26, "AA" = 27).
func Parse(ref string) (row, col int, err error) {
	s := strings.ToUpper(strings.TrimSpace(ref))

	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	letters, digits := s[:i], s[i:]
	if letters == "" || digits == "" || digits[0] == '0' {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedCellReference, ref)
	}

	for _, c := range letters {
		col = col*26 + int(c-'A'+1)
		if col > maxIndex {
			return 0, 0, fmt.Errorf("%w: %q column out of range", ErrMalformedCellReference, ref)
		}
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, 0, fmt.Errorf("%w: %q", ErrMalformedCellReference, ref)
		}
		row = row*10 + int(c-'0')
		if row > maxIndex {
			return 0, 0, fmt.Errorf("%w: %q row out of range", ErrMalformedCellReference, ref)
		}
	}

	return row, col, nil
}

// maxIndex bounds parsed coordinates well below integer overflow.
const maxIndex = 1 << 40

// Format returns the A1-style reference for a one-based row and column.
func Format(row, col int) string {
	return ColumnName(col) + fmt.Sprint(row)
}

// ColumnName returns the bijective base-26 letters for a one-based column.
// Non-positive columns yield an empty string.
func ColumnName(col int) string {
	var buf []byte
	for col > 0 {
		col--
		buf = append(buf, byte('A'+col%26))
		col /= 26
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// Range is a rectangle of cells with inclusive one-based bounds.
type Range struct {
	MinRow, MinCol int
	MaxRow, MaxCol int
}

// ParseRange parses "A1:D10" (absolute markers such as "$A$1" are accepted).
// A single reference yields a one-cell range. Bounds are normalized so Min <= Max.
func ParseRange(s string) (Range, error) {
	s = strings.ReplaceAll(s, "$", "")
	parts := strings.Split(s, ":")
	if len(parts) > 2 {
		return Range{}, fmt.Errorf("%w: range %q", ErrMalformedCellReference, s)
	}

	r1, c1, err := Parse(parts[0])
	if err != nil {
		return Range{}, err
	}
	r2, c2 := r1, c1
	if len(parts) == 2 {
		if r2, c2, err = Parse(parts[1]); err != nil {
			return Range{}, err
		}
	}

	return Range{
		MinRow: min(r1, r2),
		MinCol: min(c1, c2),
		MaxRow: max(r1, r2),
		MaxCol: max(c1, c2),
	}, nil
}

// String formats the range as "A1:D10".
func (r Range) String() string {
	return Format(r.MinRow, r.MinCol) + ":" + Format(r.MaxRow, r.MaxCol)
}
