package config

import (
	"os"
	"path/filepath"
)

const appName = "webembed"

// GetConfigDir returns $XDG_CONFIG_HOME/webembed, defaulting to ~/.config/webembed.
func GetConfigDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", appName), nil
}
