package keys

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	serrors "github.com/PolarWolf314/sator/internal/errors"
	"github.com/PolarWolf314/sator/internal/magic"
)

// FileExtension is appended to key files written to the keys directory.
const FileExtension = ".satorkey"

type keyFile struct {
	Key keyRecord `toml:"key"`
}

type keyRecord struct {
	ID              string    `toml:"id"`
	Order           int       `toml:"order"`
	Method          string    `toml:"method"`
	Padding         string    `toml:"padding"`
	PaddingCount    int       `toml:"padding_count"`
	CreatedAt       time.Time `toml:"created_at"`
	Transformations []string  `toml:"transformations"`
}

// Marshal encodes the key as a TOML document.
func Marshal(key *CipherKey) ([]byte, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	steps := make([]string, len(key.Transformations))
	for i, t := range key.Transformations {
		steps[i] = t.String()
	}
	doc := keyFile{Key: keyRecord{
		ID:              key.ID,
		Order:           key.Order,
		Method:          key.Method.String(),
		Padding:         string(key.Padding),
		PaddingCount:    key.PaddingCount,
		CreatedAt:       key.CreatedAt,
		Transformations: steps,
	}}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding key: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a TOML key document and validates it.
func Unmarshal(data []byte) (*CipherKey, error) {
	var doc keyFile
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", serrors.ErrInvalidKey, err)
	}
	rec := doc.Key

	method, err := magic.ParseMethod(rec.Method)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", serrors.ErrInvalidKey, err)
	}
	if utf8.RuneCountInString(rec.Padding) != 1 {
		return nil, fmt.Errorf("%w: padding must be a single character, got %q", serrors.ErrInvalidKey, rec.Padding)
	}
	padding, _ := utf8.DecodeRuneInString(rec.Padding)

	transformations, err := parseTransformations(rec.Transformations)
	if err != nil {
		return nil, err
	}

	key := &CipherKey{
		ID:              rec.ID,
		Order:           rec.Order,
		Method:          method,
		Transformations: transformations,
		Padding:         padding,
		PaddingCount:    rec.PaddingCount,
		CreatedAt:       rec.CreatedAt,
	}
	if err := key.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", serrors.ErrInvalidKey, err)
	}
	return key, nil
}

// Save writes the key to path, sealing it when passphrase is non-empty.
// Parent directories are created as needed and the file is only readable
// by the owner.
func Save(path string, key *CipherKey, passphrase []byte) error {
	data, err := Marshal(key)
	if err != nil {
		return err
	}
	if len(passphrase) > 0 {
		if data, err = Seal(data, passphrase); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating key directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing key file %s: %w", path, err)
	}
	return nil
}

// Load reads a key file written by Save.
//
// Returns ErrKeyNotFound if the file does not exist, ErrSealedKey if the file
// is sealed and no passphrase was given, and ErrUnsealFailed if the
// passphrase is wrong.
func Load(path string, passphrase []byte) (*CipherKey, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", serrors.ErrKeyNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading key file %s: %w", path, err)
	}

	if IsSealed(data) {
		if len(passphrase) == 0 {
			return nil, fmt.Errorf("%w: %s", serrors.ErrSealedKey, path)
		}
		if data, err = Open(data, passphrase); err != nil {
			return nil, err
		}
	}
	return Unmarshal(data)
}
