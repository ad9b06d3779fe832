package cipher

import (
	"fmt"
	"unicode/utf8"

	serrors "github.com/PolarWolf314/sator/internal/errors"
	"github.com/PolarWolf314/sator/internal/keys"
)

// Encrypt pads plaintext with the key's padding character and scatters it
// over the key's scrambled square.
func Encrypt(plaintext string, key *keys.CipherKey) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	if n := utf8.RuneCountInString(plaintext); n > key.Capacity() {
		return "", fmt.Errorf("%w: %d characters, key holds %d", serrors.ErrPlaintextTooLong, n, key.Capacity())
	}

	codec, err := codecFor(key)
	if err != nil {
		return "", err
	}
	return codec.Encode(plaintext)
}

// Decrypt gathers ciphertext back into plaintext order and strips the
// trailing padding run.
func Decrypt(ciphertext string, key *keys.CipherKey) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	if n := utf8.RuneCountInString(ciphertext); n != key.Capacity() {
		return "", fmt.Errorf("%w: %d characters, key expects %d", serrors.ErrCiphertextLengthMismatch, n, key.Capacity())
	}

	codec, err := codecFor(key)
	if err != nil {
		return "", err
	}
	return codec.Decode(ciphertext)
}

// checkKey validates the recipe without building its square.
func checkKey(key *keys.CipherKey) error {
	if key == nil {
		return fmt.Errorf("%w: no key", serrors.ErrInvalidKey)
	}
	return key.Validate()
}

func codecFor(key *keys.CipherKey) (*Codec, error) {
	sq, err := key.Square()
	if err != nil {
		return nil, err
	}
	return NewCodec(sq, key.Padding), nil
}
