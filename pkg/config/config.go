// Package config provides configuration management for mongotest.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Mongo: uri, database, timeout_sec
//   - Scan: base_package, manifest, strict
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use MONGOTEST_ prefix with underscores for nesting:
//
//	MONGOTEST_MONGO_URI=mongodb://localhost:27017
//	MONGOTEST_MONGO_DATABASE=mongotest
//	MONGOTEST_SCAN_BASE_PACKAGE=github.com/acme/app/model
//	MONGOTEST_LOG_LEVEL=info
//	MONGOTEST_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete mongotest configuration.
type Config struct {
	// Mongo contains MongoDB connection settings.
	Mongo MongoConfig `mapstructure:"mongo" yaml:"mongo"`

	// Scan contains settings of the document scanner.
	Scan ScanConfig `mapstructure:"scan" yaml:"scan"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of collections read concurrently.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// MongoConfig contains MongoDB connection parameters.
type MongoConfig struct {
	// URI is the MongoDB connection string.
	URI string `mapstructure:"uri" yaml:"uri"`

	// Database is the name of the database under test.
	Database string `mapstructure:"database" yaml:"database"`

	// TimeoutSec limits server selection and connection checks.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`
}

// ScanConfig contains settings of the document scanner.
type ScanConfig struct {
	// BasePackage restricts scanning to an import path prefix.
	// Empty string means all known documents.
	BasePackage string `mapstructure:"base_package" yaml:"base_package"`

	// Manifest is the path to a YAML file listing document types.
	// Used by the CLI, which cannot see types of the application.
	// Empty means the default location in the config directory.
	Manifest string `mapstructure:"manifest" yaml:"manifest"`

	// Strict turns collection name collisions into errors.
	Strict bool `mapstructure:"strict" yaml:"strict"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Mongo: MongoConfig{
			URI:        "mongodb://localhost:27017",
			Database:   "mongotest",
			TimeoutSec: 10,
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
