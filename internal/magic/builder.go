package magic

import (
	"fmt"
	"strings"

	serrors "github.com/PolarWolf314/sator/internal/errors"
)

// Method names a magic square construction algorithm.
type Method int

const (
	// Siamese builds odd-order squares.
	Siamese Method = iota + 1
	// GenericDoublyEven builds squares whose order is a multiple of 4.
	GenericDoublyEven
)

func (m Method) String() string {
	switch m {
	case Siamese:
		return "siamese"
	case GenericDoublyEven:
		return "doubly-even"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod parses a method name as produced by Method.String. The
// snake_case spelling generic_doubly_even is accepted as well.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "siamese":
		return Siamese, nil
	case "doubly-even", "generic-doubly-even", "generic_doubly_even":
		return GenericDoublyEven, nil
	}
	return 0, fmt.Errorf("unknown construction method %q", name)
}

// Supports reports whether the method can build a square of the given order.
func (m Method) Supports(order int) bool {
	switch m {
	case Siamese:
		return order >= 1 && order%2 == 1
	case GenericDoublyEven:
		return order >= 4 && order%4 == 0
	default:
		return false
	}
}

// MethodFor picks the construction method for an order.
func MethodFor(order int) (Method, error) {
	switch {
	case Siamese.Supports(order):
		return Siamese, nil
	case GenericDoublyEven.Supports(order):
		return GenericDoublyEven, nil
	}
	return 0, fmt.Errorf("%w: no method builds order %d", serrors.ErrUnsupportedOrder, order)
}

// Build constructs a fresh magic square of the given order.
//
// Returns ErrUnsupportedOrder if the method cannot build that order, e.g. an
// even order with Siamese or an order not divisible by 4 with
// GenericDoublyEven.
func Build(order int, method Method) (*Square, error) {
	if !method.Supports(order) {
		return nil, fmt.Errorf("%w: %s cannot build order %d", serrors.ErrUnsupportedOrder, method, order)
	}

	var sq *Square
	switch method {
	case Siamese:
		sq = buildSiamese(order)
	case GenericDoublyEven:
		sq = buildDoublyEven(order)
	}

	if err := sq.Verify(); err != nil {
		panic(fmt.Sprintf("magic: %s produced an invalid square of order %d: %v", method, order, err))
	}
	return sq, nil
}

func buildSiamese(n int) *Square {
	sq := newSquare(n)
	row, col := 0, (n-1)/2
	for v := 1; v <= n*n; v++ {
		sq.set(row, col, v)
		nextRow, nextCol := wrap(row-1, n), wrap(col+1, n)
		if sq.At(nextRow, nextCol) != 0 {
			nextRow, nextCol = wrap(row+1, n), col
		}
		row, col = nextRow, nextCol
	}
	return sq
}

func buildDoublyEven(n int) *Square {
	sq := newSquare(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := r*n + c + 1
			if onBlockDiagonal(r, c) {
				v = n*n + 1 - v
			}
			sq.set(r, c, v)
		}
	}
	return sq
}

// onBlockDiagonal reports whether (r, c) lies on a diagonal of its 4×4 block.
func onBlockDiagonal(r, c int) bool {
	br, bc := r%4, c%4
	return br == bc || br+bc == 3
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
