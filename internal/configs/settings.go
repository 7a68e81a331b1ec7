package configs

import (
	"log"
	"os"
	"path/filepath"
)

type UserSettings struct {
	ConfigPath string
	DataPath   string
}

var UserAffineSettings *UserSettings

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

	UserAffineSettings = &UserSettings{
		ConfigPath: filepath.Join(configDir, "affine"),
		DataPath:   filepath.Join(dataDir, "affine"),
	}
}

// ConfigFilePath returns the path of the user config file.
func ConfigFilePath() string {
	return filepath.Join(UserAffineSettings.ConfigPath, "config.toml")
}

// HistoryFilePath returns the path of the operation history log.
func HistoryFilePath() string {
	return filepath.Join(UserAffineSettings.DataPath, "history.jsonl")
}
