// Package config loads the loan policy and locates configuration files.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "LOANWISE"

// DefaultConfigDir returns the directory searched for config.yaml when no
// --config flag is given.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "loanwise"), nil
}

// ExpandPath expands a leading ~ and any $VAR references in path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}

	return os.ExpandEnv(path)
}
