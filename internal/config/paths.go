package config

import (
	"os"
	"path/filepath"
)

// EnvHome overrides the default ~/.wmsession state directory
const EnvHome = "WMSESSION_HOME"

// GetHome returns WMSESSION_HOME or ~/.wmsession default
func GetHome() string {
	home := os.Getenv(EnvHome)
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".wmsession"
		}
		return filepath.Join(homeDir, ".wmsession")
	}
	return ExpandPath(home)
}

// GetDBPath returns $WMSESSION_HOME/catalog.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "catalog.db")
}

// GetSettingsPath returns $WMSESSION_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetSessionsDir returns the directory holding saved session files:
// $XDG_DATA_HOME/wmsession/sessions, or ~/.local/share/wmsession/sessions
func GetSessionsDir() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(ExpandPath(dataHome), "wmsession", "sessions")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(GetHome(), "sessions")
	}
	return filepath.Join(homeDir, ".local", "share", "wmsession", "sessions")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
