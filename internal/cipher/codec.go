package cipher

import (
	"fmt"
	"strings"

	serrors "github.com/PolarWolf314/sator/internal/errors"
	"github.com/PolarWolf314/sator/internal/magic"
)

// Codec holds the cell permutation derived from one square.
type Codec struct {
	padding rune

	// cellSource[cell] is the plaintext index placed in that cell.
	cellSource []int
	// sourceCell[i] is the cell that receives plaintext index i.
	sourceCell []int
}

// NewCodec derives the permutation from a verified square.
func NewCodec(sq *magic.Square, padding rune) *Codec {
	values := sq.Values()
	c := &Codec{
		padding:    padding,
		cellSource: make([]int, len(values)),
		sourceCell: make([]int, len(values)),
	}
	for cell, v := range values {
		c.cellSource[cell] = v - 1
		c.sourceCell[v-1] = cell
	}
	return c
}

// Capacity returns the number of characters one block holds.
func (c *Codec) Capacity() int {
	return len(c.cellSource)
}

// Encode pads plaintext to the codec's capacity and permutes it.
//
// Returns ErrPlaintextTooLong if plaintext has more characters than cells.
func (c *Codec) Encode(plaintext string) (string, error) {
	text := []rune(plaintext)
	if len(text) > c.Capacity() {
		return "", fmt.Errorf("%w: %d characters, key holds %d", serrors.ErrPlaintextTooLong, len(text), c.Capacity())
	}

	padded := make([]rune, c.Capacity())
	n := copy(padded, text)
	for i := n; i < len(padded); i++ {
		padded[i] = c.padding
	}

	out := make([]rune, c.Capacity())
	for cell, src := range c.cellSource {
		out[cell] = padded[src]
	}
	return string(out), nil
}

// Decode restores the plaintext order and strips trailing padding.
//
// Returns ErrCiphertextLengthMismatch unless ciphertext has exactly as many
// characters as the square has cells.
func (c *Codec) Decode(ciphertext string) (string, error) {
	text := []rune(ciphertext)
	if len(text) != c.Capacity() {
		return "", fmt.Errorf("%w: %d characters, key expects %d", serrors.ErrCiphertextLengthMismatch, len(text), c.Capacity())
	}

	out := make([]rune, c.Capacity())
	for src, cell := range c.sourceCell {
		out[src] = text[cell]
	}
	return strings.TrimRight(string(out), string(c.padding)), nil
}
