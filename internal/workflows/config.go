package workflows

import (
	"context"

	"github.com/PolarWolf314/sator/internal/configs"
)

// ConfigResult contains the user configuration and where it lives.
type ConfigResult struct {
	Config     *configs.UserConfig
	ConfigPath string
	KeysPath   string
}

// ShowConfig loads the user configuration, creating the user UUID on first
// use.
func ShowConfig(ctx context.Context) (*ConfigResult, error) {
	config, err := configs.EnsureUserConfig()
	if err != nil {
		return nil, err
	}
	return &ConfigResult{
		Config:     config,
		ConfigPath: configs.ConfigFilePath(),
		KeysPath:   configs.UserSatorSettings.UserKeysPath,
	}, nil
}

// SetConfigOptions lists the defaults to change; nil fields are left alone.
type SetConfigOptions struct {
	Padding    *string
	Transforms *int
}

// SetConfig updates and saves the key generation defaults. Nothing is saved
// when a new value is invalid.
func SetConfig(ctx context.Context, opts SetConfigOptions) (*ConfigResult, error) {
	config, err := configs.EnsureUserConfig()
	if err != nil {
		return nil, err
	}

	if opts.Padding != nil {
		config.Defaults.Padding = *opts.Padding
	}
	if opts.Transforms != nil {
		config.Defaults.Transforms = *opts.Transforms
	}
	if err := configs.SaveUserConfig(config); err != nil {
		return nil, err
	}

	return &ConfigResult{
		Config:     config,
		ConfigPath: configs.ConfigFilePath(),
		KeysPath:   configs.UserSatorSettings.UserKeysPath,
	}, nil
}
