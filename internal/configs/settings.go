package configs

import (
	"log"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/sator/internal/utils"
)

type UserSettings struct {
	UserKeysPath    string
	UserConfigsPath string
	Username        string
}

var UserSatorSettings *UserSettings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	username, err := utils.GetUsername()
	if err != nil {
		// Containers without a passwd entry have no username; audit entries
		// fall back to the user UUID.
		username = ""
	}

	UserSatorSettings = &UserSettings{
		UserKeysPath:    filepath.Join(dataDir, "sator", "keys"),
		UserConfigsPath: filepath.Join(configDir, "sator"),
		Username:        username,
	}
}

// ConfigFilePath returns the path of the user config file.
func ConfigFilePath() string {
	return filepath.Join(UserSatorSettings.UserConfigsPath, "config.toml")
}
