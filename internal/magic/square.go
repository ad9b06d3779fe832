package magic

import (
	"fmt"
	"strconv"
	"strings"

	serrors "github.com/PolarWolf314/sator/internal/errors"
)

// Square is an n×n grid of the values 1..n² stored in row-major order.
// The zero value is not usable; squares come from Build, NewSquare or
// ParseLayout.
type Square struct {
	order int
	cells []int
}

// MagicConstant returns the common row, column and diagonal sum for order n.
func MagicConstant(n int) int {
	return n * (n*n + 1) / 2
}

func newSquare(n int) *Square {
	return &Square{order: n, cells: make([]int, n*n)}
}

// NewSquare wraps row-major values as a square of the given order and
// verifies the magic invariants.
func NewSquare(order int, values []int) (*Square, error) {
	if order < 1 || len(values) != order*order {
		return nil, fmt.Errorf("%w: %d values cannot form a square of order %d", serrors.ErrInvalidLayout, len(values), order)
	}
	sq := &Square{order: order, cells: append([]int(nil), values...)}
	if err := sq.Verify(); err != nil {
		return nil, err
	}
	return sq, nil
}

// Order returns the edge length of the square.
func (s *Square) Order() int { return s.order }

// MagicConstant returns the magic constant for the square's order.
func (s *Square) MagicConstant() int { return MagicConstant(s.order) }

// At returns the value at row r, column c.
func (s *Square) At(r, c int) int { return s.cells[r*s.order+c] }

func (s *Square) set(r, c, v int) { s.cells[r*s.order+c] = v }

// Values returns a copy of the cells in row-major order.
func (s *Square) Values() []int {
	return append([]int(nil), s.cells...)
}

// Rows returns a copy of the square as a slice of rows.
func (s *Square) Rows() [][]int {
	rows := make([][]int, s.order)
	for r := range rows {
		rows[r] = append([]int(nil), s.cells[r*s.order:(r+1)*s.order]...)
	}
	return rows
}

// Clone returns an independent copy of the square.
func (s *Square) Clone() *Square {
	return &Square{order: s.order, cells: s.Values()}
}

// Equal reports whether both squares have the same order and cell values.
func (s *Square) Equal(other *Square) bool {
	if other == nil || s.order != other.order {
		return false
	}
	for i, v := range s.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// Verify checks that every value in 1..n² appears exactly once and that all
// rows, columns and both main diagonals sum to the magic constant.
func (s *Square) Verify() error {
	n := s.order
	seen := make([]bool, n*n+1)
	for i, v := range s.cells {
		if v < 1 || v > n*n {
			return fmt.Errorf("%w: value %d at cell %d is outside 1..%d", serrors.ErrInvalidLayout, v, i, n*n)
		}
		if seen[v] {
			return fmt.Errorf("%w: value %d appears more than once", serrors.ErrInvalidLayout, v)
		}
		seen[v] = true
	}

	want := MagicConstant(n)
	var diag, anti int
	for i := 0; i < n; i++ {
		var row, col int
		for j := 0; j < n; j++ {
			row += s.At(i, j)
			col += s.At(j, i)
		}
		if row != want {
			return fmt.Errorf("%w: row %d sums to %d, want %d", serrors.ErrNotMagic, i, row, want)
		}
		if col != want {
			return fmt.Errorf("%w: column %d sums to %d, want %d", serrors.ErrNotMagic, i, col, want)
		}
		diag += s.At(i, i)
		anti += s.At(i, n-1-i)
	}
	if diag != want {
		return fmt.Errorf("%w: main diagonal sums to %d, want %d", serrors.ErrNotMagic, diag, want)
	}
	if anti != want {
		return fmt.Errorf("%w: anti-diagonal sums to %d, want %d", serrors.ErrNotMagic, anti, want)
	}
	return nil
}

// String renders the square one row per line with right-aligned columns.
func (s *Square) String() string {
	width := len(strconv.Itoa(s.order * s.order))
	var b strings.Builder
	for r := 0; r < s.order; r++ {
		for c := 0; c < s.order; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*d", width, s.At(r, c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
