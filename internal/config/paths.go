package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the user-level config file path, following the
// platform config-directory convention (~/.config/ogit/config.yml on
// Linux).
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "ogit", "config.yml"), nil
}

// ProjectConfigPath returns the project-level config file path,
// relative to the working directory.
func ProjectConfigPath() string {
	return filepath.Join(".ogit", "config.yml")
}

// ProjectConfigDir returns the project-level config directory.
func ProjectConfigDir() string {
	return ".ogit"
}

// LegacyUserConfigPath returns the old user-level JSON config path.
func LegacyUserConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".ogit", "config.json"), nil
}

// LegacyProjectConfigPath returns the old project-level JSON config
// path.
func LegacyProjectConfigPath() string {
	return filepath.Join(".ogit", "config.json")
}
