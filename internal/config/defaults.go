package config

import (
	"os"
	"path/filepath"
)

// Default configuration values
const (
	DefaultVoxVersion = "0.1.0"
	DefaultLibraryDir = "."
	DefaultIndexFile  = "index.json"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "pretty"
)

// ConfigDir returns the directory holding the user configuration file
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".vox")
}

// DefaultCacheDir returns the default manifest cache directory
func DefaultCacheDir() string {
	return filepath.Join(ConfigDir(), "cache")
}
