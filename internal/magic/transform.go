package magic

import (
	"fmt"
	"strconv"
	"strings"

	serrors "github.com/PolarWolf314/sator/internal/errors"
)

// Kind identifies a structure-preserving transformation.
type Kind int

const (
	RotateCW Kind = iota + 1
	RotateCCW
	SwapOuterPair
	SwapRowPair
	// SwapColPair is an alias of SwapRowPair: both exchange the pairs on rows and columns.
	SwapColPair
)

var kindNames = map[Kind]string{
	RotateCW:      "rotate-cw",
	RotateCCW:     "rotate-ccw",
	SwapOuterPair: "swap-outer",
	SwapRowPair:   "swap-rows",
	SwapColPair:   "swap-cols",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Kinds returns every transformation kind in declaration order.
func Kinds() []Kind {
	return []Kind{RotateCW, RotateCCW, SwapOuterPair, SwapRowPair, SwapColPair}
}

// ValidKinds returns the kinds that have at least one valid parameter set
// for a square of the given order. Pair swaps need two distinct rows in the
// upper half, so they only appear from order 4 upwards.
func ValidKinds(order int) []Kind {
	kinds := []Kind{RotateCW, RotateCCW, SwapOuterPair}
	if MaxPairIndex(order) >= 2 {
		kinds = append(kinds, SwapRowPair, SwapColPair)
	}
	return kinds
}

// MaxPairIndex returns the largest 1-indexed row usable by a pair swap:
// indices must satisfy 1 <= i < j < (n+1)/2.
func MaxPairIndex(order int) int {
	return order / 2
}

// Transformation is one step of a key's scramble sequence. I and J are
// 1-indexed: SwapOuterPair uses I, the pair swaps use I < J, rotations use
// neither.
type Transformation struct {
	Kind Kind
	I    int
	J    int
}

// OuterSwap returns a SwapOuterPair transformation for index i.
func OuterSwap(i int) Transformation {
	return Transformation{Kind: SwapOuterPair, I: i}
}

// RowPairSwap returns a SwapRowPair transformation for indices i < j.
func RowPairSwap(i, j int) Transformation {
	return Transformation{Kind: SwapRowPair, I: i, J: j}
}

// ColPairSwap returns a SwapColPair transformation for indices i < j.
func ColPairSwap(i, j int) Transformation {
	return Transformation{Kind: SwapColPair, I: i, J: j}
}

// Validate checks the transformation's indices against a square order.
func (t Transformation) Validate(order int) error {
	switch t.Kind {
	case RotateCW, RotateCCW:
		if t.I != 0 || t.J != 0 {
			return fmt.Errorf("%w: %s takes no indices", serrors.ErrInvalidIndex, t.Kind)
		}
	case SwapOuterPair:
		if t.I < 1 || t.I > order || t.J != 0 {
			return fmt.Errorf("%w: %s needs 1 <= i <= %d, got i=%d", serrors.ErrInvalidIndex, t.Kind, order, t.I)
		}
	case SwapRowPair, SwapColPair:
		if t.I < 1 || t.I >= t.J || t.J > MaxPairIndex(order) {
			return fmt.Errorf("%w: %s needs 1 <= i < j <= %d, got i=%d j=%d",
				serrors.ErrInvalidIndex, t.Kind, MaxPairIndex(order), t.I, t.J)
		}
	default:
		return fmt.Errorf("%w: unknown transformation kind %d", serrors.ErrInvalidIndex, int(t.Kind))
	}
	return nil
}

// Inverse returns the transformation that undoes t. Rotations invert each
// other; every swap is its own inverse.
func (t Transformation) Inverse() Transformation {
	switch t.Kind {
	case RotateCW:
		return Transformation{Kind: RotateCCW}
	case RotateCCW:
		return Transformation{Kind: RotateCW}
	default:
		return t
	}
}

// String returns the compact token form: cw, ccw, outer<i>, rows<i>-<j>
// or cols<i>-<j>.
func (t Transformation) String() string {
	switch t.Kind {
	case RotateCW:
		return "cw"
	case RotateCCW:
		return "ccw"
	case SwapOuterPair:
		return "outer" + strconv.Itoa(t.I)
	case SwapRowPair:
		return fmt.Sprintf("rows%d-%d", t.I, t.J)
	case SwapColPair:
		return fmt.Sprintf("cols%d-%d", t.I, t.J)
	default:
		return t.Kind.String()
	}
}

// ParseTransformation parses the token form produced by String. Indices are
// not range-checked; use Validate once the order is known.
func ParseTransformation(text string) (Transformation, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	switch {
	case text == "cw":
		return Transformation{Kind: RotateCW}, nil
	case text == "ccw":
		return Transformation{Kind: RotateCCW}, nil
	case strings.HasPrefix(text, "outer"):
		i, err := strconv.Atoi(strings.TrimPrefix(text, "outer"))
		if err != nil {
			return Transformation{}, fmt.Errorf("invalid outer swap %q", text)
		}
		return OuterSwap(i), nil
	case strings.HasPrefix(text, "rows"):
		i, j, err := parsePair(strings.TrimPrefix(text, "rows"))
		if err != nil {
			return Transformation{}, fmt.Errorf("invalid row pair swap %q: %w", text, err)
		}
		return RowPairSwap(i, j), nil
	case strings.HasPrefix(text, "cols"):
		i, j, err := parsePair(strings.TrimPrefix(text, "cols"))
		if err != nil {
			return Transformation{}, fmt.Errorf("invalid column pair swap %q: %w", text, err)
		}
		return ColPairSwap(i, j), nil
	}
	return Transformation{}, fmt.Errorf("unknown transformation %q", text)
}

func parsePair(text string) (int, int, error) {
	left, right, ok := strings.Cut(text, "-")
	if !ok {
		return 0, 0, fmt.Errorf("expected <i>-<j>")
	}
	i, err := strconv.Atoi(left)
	if err != nil {
		return 0, 0, err
	}
	j, err := strconv.Atoi(right)
	if err != nil {
		return 0, 0, err
	}
	return i, j, nil
}

// Apply transforms the square in place. The square is left untouched when
// the transformation's indices are invalid for its order.
//
// Pair swaps exchange the named rows (or columns) together with their
// mirrored partners and apply the same exchange along the other axis, so
// cells on either main diagonal stay on that diagonal.
func Apply(sq *Square, t Transformation) error {
	if err := t.Validate(sq.order); err != nil {
		return err
	}

	n := sq.order
	switch t.Kind {
	case RotateCW:
		sq.rotate(func(r, c int) (int, int) { return c, n - 1 - r })
	case RotateCCW:
		sq.rotate(func(r, c int) (int, int) { return n - 1 - c, r })
	case SwapOuterPair:
		a, b := t.I-1, n-t.I
		sq.swapRows(a, b)
		sq.swapCols(a, b)
	case SwapRowPair:
		a, b := t.I-1, t.J-1
		sq.swapRows(a, b)
		sq.swapRows(n-1-a, n-1-b)
		sq.swapCols(a, b)
		sq.swapCols(n-1-a, n-1-b)
	case SwapColPair:
		a, b := t.I-1, t.J-1
		sq.swapCols(a, b)
		sq.swapCols(n-1-a, n-1-b)
		sq.swapRows(a, b)
		sq.swapRows(n-1-a, n-1-b)
	}
	return nil
}

// ApplyAll applies a sequence of transformations in order. All indices are
// validated before the square is touched.
func ApplyAll(sq *Square, ts []Transformation) error {
	for i, t := range ts {
		if err := t.Validate(sq.order); err != nil {
			return fmt.Errorf("transformation %d (%s): %w", i, t, err)
		}
	}
	for _, t := range ts {
		if err := Apply(sq, t); err != nil {
			return err
		}
	}
	return nil
}

// Undo reverses a sequence previously applied with ApplyAll.
func Undo(sq *Square, ts []Transformation) error {
	inverse := make([]Transformation, len(ts))
	for i, t := range ts {
		inverse[len(ts)-1-i] = t.Inverse()
	}
	return ApplyAll(sq, inverse)
}

// rotate moves the value at (r, c) to dest(r, c).
func (s *Square) rotate(dest func(r, c int) (int, int)) {
	n := s.order
	out := make([]int, len(s.cells))
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			nr, nc := dest(r, c)
			out[nr*n+nc] = s.At(r, c)
		}
	}
	s.cells = out
}

func (s *Square) swapRows(a, b int) {
	if a == b {
		return
	}
	n := s.order
	for c := 0; c < n; c++ {
		s.cells[a*n+c], s.cells[b*n+c] = s.cells[b*n+c], s.cells[a*n+c]
	}
}

func (s *Square) swapCols(a, b int) {
	if a == b {
		return
	}
	n := s.order
	for r := 0; r < n; r++ {
		s.cells[r*n+a], s.cells[r*n+b] = s.cells[r*n+b], s.cells[r*n+a]
	}
}
