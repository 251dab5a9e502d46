// Package diag provides the diagnostic log for foxtrot.
//
// The TUI owns the terminal, so fetch failures and other diagnostics are
// written to a log file instead of stderr. Nothing in this package is ever
// rendered in the UI.
package diag

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Logger writes timestamped diagnostic lines.
type Logger struct {
	log    *log.Logger
	closer io.Closer
}

// Open creates (or appends to) the diagnostic log file at path, creating
// parent directories as needed.
func Open(path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &Logger{
		log:    log.New(file, "", log.LstdFlags),
		closer: file,
	}, nil
}

// New wraps an arbitrary writer, for tests and for discarding.
func New(w io.Writer) *Logger {
	return &Logger{log: log.New(w, "", log.LstdFlags)}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard)
}

// Printf writes one formatted line to the diagnostic log.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || l.log == nil {
		return
	}
	l.log.Printf(format, args...)
}

// Close releases the underlying file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
