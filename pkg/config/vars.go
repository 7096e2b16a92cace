package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "mongotest"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/mongotest by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/mongotest/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/mongotest/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// ManifestFilePath returns the default path of the document manifest.
// Returns ~/.config/mongotest/documents.yaml by default.
func ManifestFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "documents.yaml")
}

// ManifestPath returns the configured manifest path, or the default one
// when none is configured.
func (c *Config) ManifestPath() string {
	if c.Scan.Manifest != "" {
		return c.Scan.Manifest
	}
	return ManifestFilePath(c.HomeDir)
}
