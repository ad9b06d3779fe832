package workflows

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/PolarWolf314/sator/internal/audit"
	"github.com/PolarWolf314/sator/internal/cipher"
	"github.com/PolarWolf314/sator/internal/configs"
	serrors "github.com/PolarWolf314/sator/internal/errors"
	"github.com/PolarWolf314/sator/internal/keys"
	"github.com/PolarWolf314/sator/internal/magic"
)

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// Text is the ciphertext.
	Text string

	// Key selects the key. Ignored when Layout is set.
	Key KeySource

	// Layout is a "/"-joined square layout used instead of a key.
	Layout string

	// Padding is stripped from layout decryptions. Defaults to the
	// configured padding.
	Padding rune
}

// DecryptResult contains the outcome of a decrypt operation.
type DecryptResult struct {
	Plaintext string

	// Key is nil for layout decryptions.
	Key     *keys.CipherKey
	KeyPath string
}

// Decrypt decrypts opts.Text with a key or a raw layout.
//
// Returns ErrCiphertextLengthMismatch if the text does not fill the square.
// Returns ErrInvalidLayout or ErrNotMagic for a malformed layout.
func Decrypt(ctx context.Context, opts DecryptOptions) (*DecryptResult, error) {
	if opts.Layout != "" {
		return decryptWithLayout(opts)
	}

	key, path, err := loadKey(opts.Key)
	if err != nil {
		return nil, err
	}
	plaintext, err := cipher.Decrypt(opts.Text, key)
	if err != nil {
		return nil, err
	}

	entry := audit.LogWithUser(audit.OpDecrypt)
	entry.KeyID = key.ID
	entry.Order = key.Order
	entry.Length = utf8.RuneCountInString(plaintext)
	entry.KeyPath = path
	audit.Log(entry)

	return &DecryptResult{Plaintext: plaintext, Key: key, KeyPath: path}, nil
}

func decryptWithLayout(opts DecryptOptions) (*DecryptResult, error) {
	if !opts.Key.empty() {
		return nil, fmt.Errorf("%w: give either a key or a layout, not both", serrors.ErrInvalidKey)
	}
	sq, err := magic.ParseLayout(opts.Layout)
	if err != nil {
		return nil, err
	}

	padding := opts.Padding
	if padding == 0 {
		userConfig, err := configs.LoadUserConfig()
		if err != nil {
			return nil, fmt.Errorf("loading user config: %w", err)
		}
		padding = userConfig.Defaults.PaddingRune()
	}

	plaintext, err := cipher.NewCodec(sq, padding).Decode(opts.Text)
	if err != nil {
		return nil, err
	}

	entry := audit.LogWithUser(audit.OpDecrypt)
	entry.Order = sq.Order()
	entry.Length = utf8.RuneCountInString(plaintext)
	audit.Log(entry)

	return &DecryptResult{Plaintext: plaintext}, nil
}
