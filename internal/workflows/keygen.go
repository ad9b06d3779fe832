package workflows

import (
	"context"
	"fmt"
	"os"

	"github.com/PolarWolf314/sator/internal/audit"
	"github.com/PolarWolf314/sator/internal/configs"
	serrors "github.com/PolarWolf314/sator/internal/errors"
	"github.com/PolarWolf314/sator/internal/keys"
)

// GenerateKeyOptions configures the keygen workflow.
type GenerateKeyOptions struct {
	// Length is the number of plaintext characters the key must hold.
	Length int

	// Padding overrides the configured padding character when non-zero.
	Padding rune

	// Transforms overrides the configured transform count when non-nil.
	Transforms *int

	// OutputPath is where the key file is written. Defaults to the keys
	// directory, named after the key ID.
	OutputPath string

	// Force overwrites an existing file at OutputPath.
	Force bool

	// Seal encrypts the key file with this passphrase when non-empty.
	Seal []byte

	// Random overrides the random source, for tests.
	Random keys.RandomSource
}

// GenerateKeyResult contains the outcome of a keygen operation.
type GenerateKeyResult struct {
	Key     *keys.CipherKey
	KeyPath string
	Sealed  bool
}

// GenerateKey creates a key sized for opts.Length characters and saves it.
//
// Returns ErrKeyExists if OutputPath already exists and Force is not set.
func GenerateKey(ctx context.Context, opts GenerateKeyOptions) (*GenerateKeyResult, error) {
	userConfig, err := configs.EnsureUserConfig()
	if err != nil {
		return nil, fmt.Errorf("loading user config: %w", err)
	}

	padding := opts.Padding
	if padding == 0 {
		padding = userConfig.Defaults.PaddingRune()
	}
	transforms := userConfig.Defaults.Transforms
	if opts.Transforms != nil {
		transforms = *opts.Transforms
	}
	rng := opts.Random
	if rng == nil {
		rng = keys.NewRandomSource()
	}

	key, err := keys.Generate(opts.Length, padding, transforms, rng)
	if err != nil {
		return nil, err
	}

	keyPath := opts.OutputPath
	if keyPath == "" {
		keyPath = KeyPath(key.ID)
	}
	if !opts.Force {
		if _, err := os.Stat(keyPath); err == nil {
			return nil, fmt.Errorf("%w: %s", serrors.ErrKeyExists, keyPath)
		}
	}
	if err := keys.Save(keyPath, key, opts.Seal); err != nil {
		return nil, err
	}

	entry := audit.LogWithUser(audit.OpKeygen)
	entry.KeyID = key.ID
	entry.Order = key.Order
	entry.Transforms = len(key.Transformations)
	entry.KeyPath = keyPath
	audit.Log(entry)

	return &GenerateKeyResult{
		Key:     key,
		KeyPath: keyPath,
		Sealed:  len(opts.Seal) > 0,
	}, nil
}
