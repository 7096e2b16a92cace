package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jupiter-tools/mongotest/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "mongotest"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "mongotest", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "mongotest", "config.yaml"),
		},
		{
			msg: "manifest file",
			fn:  config.ManifestFilePath,
			res: filepath.Join(tempHome, ".config", "mongotest", "documents.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Mongo defaults
		assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
		assert.Equal(t, "mongotest", cfg.Mongo.Database)
		assert.Equal(t, 10, cfg.Mongo.TimeoutSec)

		// Scan defaults
		assert.Equal(t, "", cfg.Scan.BasePackage)
		assert.Equal(t, "", cfg.Scan.Manifest)
		assert.False(t, cfg.Scan.Strict)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		// JobsNumber defaults to CPU count
		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	})
}

func TestOptionMongoURI(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid uri",
			input:    "mongodb://db.example.com:27018",
			expected: "mongodb://db.example.com:27018",
		},
		{
			name:     "accepts srv uri",
			input:    "mongodb+srv://cluster.example.com",
			expected: "mongodb+srv://cluster.example.com",
		},
		{
			name:     "trims whitespace",
			input:    "  mongodb://db.example.com  ",
			expected: "mongodb://db.example.com",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "mongodb://localhost:27017", // Should keep default
		},
		{
			name:     "ignores other schemes",
			input:    "postgres://localhost:5432",
			expected: "mongodb://localhost:27017", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptMongoURI(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Mongo.URI)
		})
	}
}

func TestOptionMongoDatabase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid name",
			input:    "orders_test",
			expected: "orders_test",
		},
		{
			name:     "ignores whitespace-only",
			input:    "   ",
			expected: "mongotest", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptMongoDatabase(tt.input)})
			assert.Equal(t, tt.expected, cfg.Mongo.Database)
		})
	}
}

func TestOptionIntegers(t *testing.T) {
	tests := []struct {
		name     string
		opt      config.Option
		get      func(*config.Config) int
		expected int
	}{
		{
			name:     "sets timeout",
			opt:      config.OptMongoTimeoutSec(30),
			get:      func(c *config.Config) int { return c.Mongo.TimeoutSec },
			expected: 30,
		},
		{
			name:     "ignores zero timeout",
			opt:      config.OptMongoTimeoutSec(0),
			get:      func(c *config.Config) int { return c.Mongo.TimeoutSec },
			expected: 10,
		},
		{
			name:     "sets jobs number",
			opt:      config.OptJobsNumber(4),
			get:      func(c *config.Config) int { return c.JobsNumber },
			expected: 4,
		},
		{
			name:     "ignores negative jobs number",
			opt:      config.OptJobsNumber(-1),
			get:      func(c *config.Config) int { return c.JobsNumber },
			expected: runtime.NumCPU(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{tt.opt})
			assert.Equal(t, tt.expected, tt.get(cfg))
		})
	}
}

func TestOptionScan(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptScanBasePackage(" github.com/acme/app/model "),
		config.OptScanManifest("/tmp/documents.yaml"),
		config.OptScanStrict(true),
	})
	assert.Equal(t, "github.com/acme/app/model", cfg.Scan.BasePackage)
	assert.Equal(t, "/tmp/documents.yaml", cfg.Scan.Manifest)
	assert.True(t, cfg.Scan.Strict)

	cfg.Update([]config.Option{
		config.OptScanBasePackage(""),
		config.OptScanManifest(""),
	})
	assert.Equal(t, "", cfg.Scan.BasePackage)
	assert.Equal(t, "/tmp/documents.yaml", cfg.Scan.Manifest)
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid log level - debug",
			input:    "debug",
			expected: "debug",
		},
		{
			name:     "sets valid log level - error",
			input:    "error",
			expected: "error",
		},
		{
			name:     "normalizes to lowercase",
			input:    "DEBUG",
			expected: "debug",
		},
		{
			name:     "ignores invalid value",
			input:    "trace",
			expected: "info", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptLogLevel(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionLogFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets text",
			input:    "text",
			expected: "text",
		},
		{
			name:     "ignores tint",
			input:    "tint",
			expected: "json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogFormat(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Format)
		})
	}
}

func TestManifestPath(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir("/home/test")})
	assert.Equal(t,
		filepath.Join("/home/test", ".config", "mongotest", "documents.yaml"),
		cfg.ManifestPath())

	cfg.Update([]config.Option{config.OptScanManifest("docs.yaml")})
	assert.Equal(t, "docs.yaml", cfg.ManifestPath())
}

func TestMultipleOptions(t *testing.T) {
	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptMongoDatabase("first"),
			config.OptMongoDatabase("second"),
		}

		cfg.Update(opts)

		assert.Equal(t, "second", cfg.Mongo.Database)
	})
}

func TestToOptions(t *testing.T) {
	t.Run("converts config to options correctly", func(t *testing.T) {
		original := config.New()
		opts := []config.Option{
			config.OptMongoURI("mongodb://test.host.com:27018"),
			config.OptMongoDatabase("testdb"),
			config.OptMongoTimeoutSec(3),
			config.OptScanBasePackage("github.com/acme/app"),
			config.OptScanManifest("/etc/docs.yaml"),
			config.OptScanStrict(true),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
			config.OptJobsNumber(8),
		}
		original.Update(opts)

		convertedOpts := original.ToOptions()
		newCfg := config.New()
		newCfg.Update(convertedOpts)

		assert.Equal(t, original.Mongo, newCfg.Mongo)
		assert.Equal(t, original.Scan, newCfg.Scan)
		assert.Equal(t, original.Log, newCfg.Log)
		assert.Equal(t, original.JobsNumber, newCfg.JobsNumber)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir("/custom/home"),
		})

		opts := cfg.ToOptions()
		newCfg := config.New()
		newCfg.Update(opts)

		assert.Equal(t, "", newCfg.HomeDir)
	})
}
