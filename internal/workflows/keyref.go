package workflows

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PolarWolf314/sator/internal/configs"
	serrors "github.com/PolarWolf314/sator/internal/errors"
	"github.com/PolarWolf314/sator/internal/keys"
)

// PassphraseFunc supplies the passphrase for a sealed key file. It is only
// called when a sealed key is encountered.
type PassphraseFunc func() ([]byte, error)

// KeySource names the key for encrypt, decrypt and show. At most one of
// Ref and Token may be set.
type KeySource struct {
	// Ref is a key file path or the ID of a key in the keys directory.
	Ref string

	// Token is a key in token form.
	Token string

	// Passphrase is consulted when Ref points at a sealed key file.
	Passphrase PassphraseFunc
}

func (s KeySource) empty() bool {
	return s.Ref == "" && s.Token == ""
}

// KeyPath returns the keys-directory path for a key ID.
func KeyPath(id string) string {
	return filepath.Join(configs.UserSatorSettings.UserKeysPath, id+keys.FileExtension)
}

// resolveKeyPath treats ref as a path when it exists or looks like one, and
// as a key ID otherwise.
func resolveKeyPath(ref string) string {
	if _, err := os.Stat(ref); err == nil {
		return ref
	}
	if strings.ContainsAny(ref, `/\`) || strings.HasSuffix(ref, keys.FileExtension) {
		return ref
	}
	return KeyPath(ref)
}

// loadKey resolves a KeySource. The returned path is empty for tokens.
func loadKey(src KeySource) (*keys.CipherKey, string, error) {
	switch {
	case src.Ref != "" && src.Token != "":
		return nil, "", fmt.Errorf("%w: give either a key file or a token, not both", serrors.ErrInvalidKey)
	case src.Token != "":
		key, err := keys.ParseToken(src.Token)
		return key, "", err
	case src.Ref != "":
		path := resolveKeyPath(src.Ref)
		key, err := loadKeyFile(path, src.Passphrase)
		return key, path, err
	}
	return nil, "", fmt.Errorf("%w: no key given", serrors.ErrKeyNotFound)
}

func loadKeyFile(path string, passphrase PassphraseFunc) (*keys.CipherKey, error) {
	key, err := keys.Load(path, nil)
	if !errors.Is(err, serrors.ErrSealedKey) || passphrase == nil {
		return key, err
	}

	pass, err := passphrase()
	if err != nil {
		return nil, fmt.Errorf("reading passphrase: %w", err)
	}
	return keys.Load(path, pass)
}
