package keys

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"time"

	serrors "github.com/PolarWolf314/sator/internal/errors"
	"github.com/PolarWolf314/sator/internal/magic"
	"github.com/google/uuid"
)

const (
	// MinOrder is the smallest order handed out by Generate. Smaller squares
	// would leave the text in place.
	MinOrder = 3

	// MaxOrder bounds the search for a constructible order.
	MaxOrder = 10000
)

// RandomSource supplies the randomness for key generation. *rand.Rand from
// math/rand/v2 satisfies it.
type RandomSource interface {
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int
}

// NewRandomSource returns a ChaCha8 generator seeded from crypto/rand.
func NewRandomSource() RandomSource {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		binary.LittleEndian.PutUint64(seed[:], uint64(time.Now().UnixNano()))
	}
	return rand.New(rand.NewChaCha8(seed))
}

// OrderFor returns the smallest order n >= MinOrder with n² >= length that
// is odd or a multiple of 4.
func OrderFor(length int) (int, error) {
	if length < 0 {
		return 0, fmt.Errorf("%w: negative length %d", serrors.ErrNoConstructibleOrder, length)
	}
	n := MinOrder
	for n*n < length {
		n++
	}
	for ; n < MaxOrder; n++ {
		if _, err := magic.MethodFor(n); err == nil {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: length %d needs order >= %d", serrors.ErrNoConstructibleOrder, length, MaxOrder)
}

// Generate creates a key able to hold plaintextLength characters.
//
// The base square is scrambled with transformCount transformations drawn
// from rng: the kind uniformly among the kinds valid for the order, then the
// indices uniformly among that kind's valid range. A transformCount of 0
// yields the identity key.
//
// Returns ErrNoConstructibleOrder if no supported order fits the length.
func Generate(plaintextLength int, padding rune, transformCount int, rng RandomSource) (*CipherKey, error) {
	if transformCount < 0 {
		return nil, fmt.Errorf("%w: negative transform count %d", serrors.ErrInvalidKey, transformCount)
	}
	if padding == 0 {
		return nil, fmt.Errorf("%w: missing padding character", serrors.ErrInvalidKey)
	}

	order, err := OrderFor(plaintextLength)
	if err != nil {
		return nil, err
	}
	method, err := magic.MethodFor(order)
	if err != nil {
		return nil, err
	}
	sq, err := magic.Build(order, method)
	if err != nil {
		return nil, err
	}

	transformations := make([]magic.Transformation, 0, transformCount)
	for i := 0; i < transformCount; i++ {
		t := randomTransformation(order, rng)
		if err := magic.Apply(sq, t); err != nil {
			return nil, fmt.Errorf("applying %s: %w", t, err)
		}
		transformations = append(transformations, t)
	}

	return &CipherKey{
		ID:              uuid.NewString(),
		Order:           order,
		Method:          method,
		Transformations: transformations,
		Padding:         padding,
		PaddingCount:    order*order - plaintextLength,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

func randomTransformation(order int, rng RandomSource) magic.Transformation {
	kinds := magic.ValidKinds(order)
	kind := kinds[rng.IntN(len(kinds))]

	switch kind {
	case magic.SwapOuterPair:
		return magic.OuterSwap(1 + rng.IntN(order))
	case magic.SwapRowPair, magic.SwapColPair:
		m := magic.MaxPairIndex(order)
		i := 1 + rng.IntN(m)
		j := 1 + rng.IntN(m-1)
		if j >= i {
			j++
		}
		if i > j {
			i, j = j, i
		}
		return magic.Transformation{Kind: kind, I: i, J: j}
	default:
		return magic.Transformation{Kind: kind}
	}
}
