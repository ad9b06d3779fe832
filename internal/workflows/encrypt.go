package workflows

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/PolarWolf314/sator/internal/audit"
	"github.com/PolarWolf314/sator/internal/cipher"
	"github.com/PolarWolf314/sator/internal/keys"
)

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	// Text is the plaintext.
	Text string

	// Key selects an existing key. When empty a key is generated for the
	// text using Generate.
	Key KeySource

	// Generate configures the key generated when Key is empty. Its Length
	// is taken from Text.
	Generate GenerateKeyOptions
}

// EncryptResult contains the outcome of an encrypt operation.
type EncryptResult struct {
	Ciphertext string
	Key        *keys.CipherKey

	// KeyPath is the key file used or written; empty for token keys.
	KeyPath string

	// Generated is true when the key was created by this call.
	Generated bool
}

// Encrypt encrypts opts.Text with an existing or freshly generated key.
//
// Returns ErrPlaintextTooLong if the text does not fit an existing key.
// Returns ErrKeyNotFound, ErrSealedKey or ErrInvalidKey if the key cannot
// be loaded.
func Encrypt(ctx context.Context, opts EncryptOptions) (*EncryptResult, error) {
	result := &EncryptResult{}

	if opts.Key.empty() {
		genOpts := opts.Generate
		genOpts.Length = utf8.RuneCountInString(opts.Text)
		generated, err := GenerateKey(ctx, genOpts)
		if err != nil {
			return nil, fmt.Errorf("generating key: %w", err)
		}
		result.Key = generated.Key
		result.KeyPath = generated.KeyPath
		result.Generated = true
	} else {
		key, path, err := loadKey(opts.Key)
		if err != nil {
			return nil, err
		}
		result.Key = key
		result.KeyPath = path
	}

	ciphertext, err := cipher.Encrypt(opts.Text, result.Key)
	if err != nil {
		return nil, err
	}
	result.Ciphertext = ciphertext

	entry := audit.LogWithUser(audit.OpEncrypt)
	entry.KeyID = result.Key.ID
	entry.Order = result.Key.Order
	entry.Length = utf8.RuneCountInString(opts.Text)
	entry.KeyPath = result.KeyPath
	audit.Log(entry)

	return result, nil
}
