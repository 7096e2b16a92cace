package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptMongoURI sets the MongoDB connection string.
func OptMongoURI(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURI("Mongo URI", s) {
			c.Mongo.URI = s
		}
	}
}

// OptMongoDatabase sets the name of the database under test.
func OptMongoDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Mongo Database", s) {
			c.Mongo.Database = s
		}
	}
}

// OptMongoTimeoutSec sets the connection timeout in seconds.
func OptMongoTimeoutSec(i int) Option {
	return func(c *Config) {
		if isValidInt("Mongo Timeout", i) {
			c.Mongo.TimeoutSec = i
		}
	}
}

// OptScanBasePackage sets the import path prefix used for scanning.
// An empty value is accepted and means all documents.
func OptScanBasePackage(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		c.Scan.BasePackage = s
	}
}

// OptScanManifest sets the path to the document manifest.
func OptScanManifest(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Scan Manifest", s) {
			c.Scan.Manifest = s
		}
	}
}

// OptScanStrict makes collection name collisions fatal.
func OptScanStrict(b bool) Option {
	return func(c *Config) {
		c.Scan.Strict = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of collections processed concurrently.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
