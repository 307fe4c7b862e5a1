// Package logger provides structured slog loggers. All logs are written in
// JSON format, either to a stream (stderr by default) or to a rotating file.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for file logs.
const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// New creates a JSON slog.Logger that writes to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewFileLogger creates a JSON slog.Logger that writes to path, rotating the
// file once it grows past maxSizeMB. The parent directory is created if it
// does not exist. Close the returned io.Closer on shutdown.
func NewFileLogger(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, nil, fmt.Errorf("creating log directory for %q: %w", path, err)
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
	return New(w, level), w, nil
}

// FromConfig returns a file logger when logFile is set and a stderr logger
// otherwise. The closer is a no-op for stderr.
func FromConfig(logFile string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if logFile == "" {
		return New(os.Stderr, level), nopCloser{}, nil
	}
	return NewFileLogger(logFile, level)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
