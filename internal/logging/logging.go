// Package logging builds the game's structured logger.
// Stdout belongs to the game screen, so logs only ever go to a file.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the log file.
type Options struct {
	Path  string // Empty disables logging
	Level string // debug, info, warn, error

	MaxSizeMB  int // Rotate after this many megabytes
	MaxBackups int // Rotated files to keep
	MaxAgeDays int // Days to keep rotated files
}

// New returns a logger and the closer for its file.
// With an empty Path the logger discards everything.
func New(opts Options) (*log.Logger, io.Closer, error) {
	if opts.Path == "" {
		return log.New(io.Discard), nopCloser{}, nil
	}

	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: invalid level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	lj := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    orDefault(opts.MaxSizeMB, 10),
		MaxBackups: orDefault(opts.MaxBackups, 3),
		MaxAge:     orDefault(opts.MaxAgeDays, 7),
	}

	logger := log.NewWithOptions(lj, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, lj, nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
