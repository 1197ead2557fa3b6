package config

import (
	"os"
	"path/filepath"
)

// DefaultPath returns $XDG_CONFIG_HOME/yatra/config.yaml, falling back to the
// user config directory.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "yatra", "config.yaml")
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "yatra", "config.yaml")
}

// DefaultLogPath is where the TUI writes logs when log.file is unset, so log
// output never lands on the screen it is drawing.
func DefaultLogPath() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "yatra", "yatra.log")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", "yatra", "yatra.log")
	}
	return filepath.Join(os.TempDir(), "yatra.log")
}
