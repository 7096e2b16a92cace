package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/jupiter-tools/mongotest/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEnsureDirs(t *testing.T) {
	tmpDir := t.TempDir()

	// repeated calls are fine
	for range 3 {
		require.NoError(t, EnsureDirs(tmpDir))
	}

	dirs := []string{
		filepath.Join(tmpDir, ".config", "mongotest"),
		filepath.Join(tmpDir, ".local", "share", "mongotest", "logs"),
	}
	for _, v := range dirs {
		info, err := os.Stat(v)
		require.NoError(t, err, v)
		assert.True(t, info.IsDir(), v)
	}
}

func TestEnsureDirsBlocked(t *testing.T) {
	tmpDir := t.TempDir()
	// a file where the .config directory should be
	blocker := filepath.Join(tmpDir, ".config")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := EnsureDirs(tmpDir)
	require.Error(t, err)
	assert.Equal(t, errcode.CreateDirError, err.(*gn.Error).Code)
}

func TestEnsureFiles(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))
	require.NoError(t, EnsureConfigFile(tmpDir))
	require.NoError(t, EnsureManifestFile(tmpDir))

	cfgPath := filepath.Join(tmpDir, ".config", "mongotest", "config.yaml")
	bs, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, ConfigYAML, string(bs))

	// existing files are not overwritten
	require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n  level: debug\n"), 0644))
	require.NoError(t, EnsureConfigFile(tmpDir))
	bs, err = os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(bs), "debug")
}

func TestEmbeddedFilesAreValidYAML(t *testing.T) {
	var cfg map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(ConfigYAML), &cfg))
	assert.Contains(t, cfg, "mongo")
	assert.Contains(t, cfg, "scan")
	assert.Contains(t, cfg, "log")

	var m struct {
		Documents []any `yaml:"documents"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(ManifestYAML), &m))
	assert.Empty(t, m.Documents)
}

func TestReadWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteFile(path, []byte("{}")))
	bs, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(bs))

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, errcode.ReadFileError, err.(*gn.Error).Code)
}
