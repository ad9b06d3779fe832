package magic

import (
	"fmt"
	"strconv"
	"strings"

	serrors "github.com/PolarWolf314/sator/internal/errors"
)

// LayoutDelimiter separates cell values in a layout string.
const LayoutDelimiter = "/"

// Layout renders the square's cells in row-major order joined by
// LayoutDelimiter, e.g. "8/1/6/3/5/7/4/9/2".
func (s *Square) Layout() string {
	parts := make([]string, len(s.cells))
	for i, v := range s.cells {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, LayoutDelimiter)
}

// ParseLayout parses a layout string produced by Square.Layout.
//
// Returns ErrInvalidLayout if the values are not integers, do not form a
// square, or are not a permutation of 1..n². Returns ErrNotMagic if the
// grid is a permutation but not a magic square.
func ParseLayout(text string) (*Square, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty layout", serrors.ErrInvalidLayout)
	}

	fields := strings.Split(text, LayoutDelimiter)
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: cell %d: %q is not an integer", serrors.ErrInvalidLayout, i, f)
		}
		values[i] = v
	}

	order := isqrt(len(values))
	if order*order != len(values) {
		return nil, fmt.Errorf("%w: %d values do not form a square", serrors.ErrInvalidLayout, len(values))
	}
	return NewSquare(order, values)
}

func isqrt(x int) int {
	r := 0
	for (r+1)*(r+1) <= x {
		r++
	}
	return r
}
