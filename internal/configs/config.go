package configs

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	// DefaultPadding fills cells the plaintext does not reach.
	DefaultPadding = "_"

	// DefaultTransforms is the number of transformations drawn per key.
	DefaultTransforms = 16
)

type UserConfig struct {
	User     User     `toml:"user"`
	Defaults Defaults `toml:"defaults"`
}

type User struct {
	UUID string `toml:"user_uuid"`
}

// Defaults are the key generation settings used when flags are omitted.
type Defaults struct {
	Padding    string `toml:"padding"`
	Transforms int    `toml:"transforms"`
}

// Validate checks that the padding is a single character and the transform
// count is not negative.
func (d Defaults) Validate() error {
	if utf8.RuneCountInString(d.Padding) != 1 {
		return fmt.Errorf("padding must be a single character, got %q", d.Padding)
	}
	if d.Transforms < 0 {
		return fmt.Errorf("transforms must not be negative, got %d", d.Transforms)
	}
	return nil
}

// PaddingRune returns the padding as a rune. Call Validate first.
func (d Defaults) PaddingRune() rune {
	r, _ := utf8.DecodeRuneInString(d.Padding)
	return r
}

func newUserConfig() *UserConfig {
	return &UserConfig{
		Defaults: Defaults{
			Padding:    DefaultPadding,
			Transforms: DefaultTransforms,
		},
	}
}

// LoadUserConfig loads the user configuration. A missing file yields the
// defaults.
func LoadUserConfig() (*UserConfig, error) {
	configPath := ConfigFilePath()
	config := newUserConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}
	if err := config.Defaults.Validate(); err != nil {
		return nil, fmt.Errorf("invalid user config %s: %w", configPath, err)
	}

	return config, nil
}

// SaveUserConfig saves the user configuration to the config file.
func SaveUserConfig(config *UserConfig) error {
	if err := config.Defaults.Validate(); err != nil {
		return err
	}
	if err := SaveTOML(ConfigFilePath(), config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}
	return nil
}

// GenerateUserUUID generates a new UUID for the user.
func GenerateUserUUID() string {
	return uuid.New().String()
}

// EnsureUserConfig loads the user configuration, assigning and persisting a
// UUID on first use.
func EnsureUserConfig() (*UserConfig, error) {
	config, err := LoadUserConfig()
	if err != nil {
		return nil, err
	}

	if config.User.UUID == "" {
		config.User.UUID = GenerateUserUUID()
		if err := SaveUserConfig(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}
