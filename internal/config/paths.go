package config

import (
	"os"
	"path/filepath"
)

// EnvHome overrides the data directory
const EnvHome = "TAKIPCIM_HOME"

// GetHome returns $TAKIPCIM_HOME or the ~/.takipcim default
func GetHome() string {
	home := os.Getenv(EnvHome)
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".takipcim"
		}
		return filepath.Join(homeDir, ".takipcim")
	}
	return ExpandPath(home)
}

// GetDBPath returns $TAKIPCIM_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "state.db")
}

// GetSettingsPath returns $TAKIPCIM_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetSSHDir returns $TAKIPCIM_HOME/ssh, home of the host key and authorized_keys
func GetSSHDir() string {
	return filepath.Join(GetHome(), "ssh")
}

// GetLockPath returns the single-instance lock file
func GetLockPath() string {
	return filepath.Join(GetHome(), "tracker.lock")
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
