// Package iologger sets up the default slog logger for the mongotest
// CLI.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jupiter-tools/mongotest/pkg/config"
)

// Init replaces the default slog logger according to cfg. With the "file"
// destination logs go to mongotest.log in logDir, appended to or
// truncated. The returned function closes the log file, if one was
// opened.
func Init(logDir string, cfg config.LogConfig, append bool) (func() error, error) {
	closer := func() error { return nil }

	var w io.Writer
	switch cfg.Destination {
	case "stdout":
		w = os.Stdout
	case "file":
		path := LogPath(logDir)
		flag := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		if append {
			flag = os.O_CREATE | os.O_WRONLY | os.O_APPEND
		}
		f, err := os.OpenFile(path, flag, 0644)
		if err != nil {
			return closer, CreateLogFileError(path, err)
		}
		w, closer = f, f.Close
	default:
		w = os.Stderr
	}

	slog.SetDefault(slog.New(NewHandler(w, cfg)))
	return closer, nil
}

// LogPath returns the location of the log file inside logDir.
func LogPath(logDir string) string {
	return filepath.Join(logDir, config.AppName+".log")
}

// NewHandler creates a JSON or text handler writing to w.
func NewHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{Level: level(cfg.Level)}
	if cfg.Format == "text" {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// level falls back to info for unknown names.
func level(s string) slog.Level {
	var res slog.Level
	if err := res.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo
	}
	return res
}
