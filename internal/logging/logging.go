// Package logging builds the charmbracelet logger used across ringbar.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

const Prefix = "ringbar"

// New returns a logger writing to w at the named level ("debug", "info",
// "warn", "error"). An empty level means info.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		var err error
		lvl, err = log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          Prefix,
		ReportTimestamp: true,
		ReportCaller:    lvl == log.DebugLevel,
	}), nil
}

// Discard is a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// OpenFile returns a logger appending to path. The terminal belongs to the
// UI, so logs only go to a file. An empty path discards logs.
func OpenFile(path, level string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return Discard(), nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	l, err := New(f, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	l.SetFormatter(log.LogfmtFormatter)
	return l, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
