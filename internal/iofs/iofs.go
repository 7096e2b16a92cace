// Package iofs creates the directories and default files used by the
// mongotest CLI.
package iofs

import (
	_ "embed"
	"os"

	"github.com/jupiter-tools/mongotest/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed documents.yaml
var ManifestYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the default config.yaml unless it exists.
func EnsureConfigFile(homeDir string) error {
	return ensureFile(config.ConfigFilePath(homeDir), ConfigYAML)
}

// EnsureManifestFile writes an empty documents.yaml unless it exists.
func EnsureManifestFile(homeDir string) error {
	return ensureFile(config.ManifestFilePath(homeDir), ManifestYAML)
}

func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return CopyFileError(path, err)
	}

	return nil
}

// ReadFile reads a file given by the user.
func ReadFile(path string) ([]byte, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	return bs, nil
}

// WriteFile stores output of a command.
func WriteFile(path string, bs []byte) error {
	if err := os.WriteFile(path, bs, 0644); err != nil {
		return WriteFileError(path, err)
	}
	return nil
}
