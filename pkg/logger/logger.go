// Package logger provides logging functionality for the ti command.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// writerLogger is a thread-safe logger that writes one line per message.
type writerLogger struct {
	mu     sync.Mutex
	out    io.Writer
	prefix string
}

// NewDefaultLogger creates a logger writing to stderr, so that it never mixes
// with URLs printed on stdout.
func NewDefaultLogger() Logger {
	return NewWriterLogger(os.Stderr, "ti: ")
}

// NewWriterLogger creates a logger writing to out, each line starting with prefix.
func NewWriterLogger(out io.Writer, prefix string) Logger {
	return &writerLogger{
		out:    out,
		prefix: prefix,
	}
}

// Logf writes a formatted message with thread safety.
func (w *writerLogger) Logf(format string, args ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.out, w.prefix+format+"\n", args...)
}
