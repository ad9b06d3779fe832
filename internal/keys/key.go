package keys

import (
	"fmt"
	"time"

	serrors "github.com/PolarWolf314/sator/internal/errors"
	"github.com/PolarWolf314/sator/internal/magic"
)

// CipherKey is everything needed to rebuild the scrambled grid. A key is
// never modified after generation and may be shared between goroutines.
type CipherKey struct {
	// ID identifies the key in key files and the audit log. Keys parsed
	// from a token have no ID.
	ID string

	Order  int
	Method magic.Method

	// Transformations are replayed in this order on the base square.
	Transformations []magic.Transformation

	// Padding fills the cells the plaintext does not reach.
	Padding rune

	// PaddingCount is the number of padding cells needed by the plaintext
	// the key was generated for.
	PaddingCount int

	CreatedAt time.Time
}

// Capacity returns the number of characters the key's square holds.
func (k *CipherKey) Capacity() int {
	return k.Order * k.Order
}

// Validate checks that the order is below MaxOrder, that the method can
// build it and that every transformation is valid for it.
func (k *CipherKey) Validate() error {
	if k.Order >= MaxOrder {
		return fmt.Errorf("%w: order %d exceeds the maximum of %d", serrors.ErrInvalidKey, k.Order, MaxOrder-1)
	}
	if !k.Method.Supports(k.Order) {
		return fmt.Errorf("%w: %s cannot build order %d", serrors.ErrUnsupportedOrder, k.Method, k.Order)
	}
	if k.Padding == 0 {
		return fmt.Errorf("%w: missing padding character", serrors.ErrInvalidKey)
	}
	for i, t := range k.Transformations {
		if err := t.Validate(k.Order); err != nil {
			return fmt.Errorf("transformation %d (%s): %w", i, t, err)
		}
	}
	return nil
}

// Square rebuilds the scrambled grid. Each call returns a fresh square owned
// by the caller.
func (k *CipherKey) Square() (*magic.Square, error) {
	sq, err := magic.Build(k.Order, k.Method)
	if err != nil {
		return nil, err
	}
	if err := magic.ApplyAll(sq, k.Transformations); err != nil {
		return nil, err
	}
	return sq, nil
}

// Layout returns the scrambled grid as a "/"-joined layout string.
func (k *CipherKey) Layout() (string, error) {
	sq, err := k.Square()
	if err != nil {
		return "", err
	}
	return sq.Layout(), nil
}
