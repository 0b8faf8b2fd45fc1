// Package logger provides leveled logging for the apuntes CLI.
// Debug, Info and Warn messages are only printed in verbose mode (the
// --verbose flag); Error messages are always printed. Everything goes to
// stderr so command output on stdout stays clean.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type level string

const (
	levelDebug level = "DEBUG"
	levelInfo  level = "INFO"
	levelWarn  level = "WARN"
	levelError level = "ERROR"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf(levelDebug, format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf(levelInfo, format, args...)
}

// Warn prints a warning if verbose mode is enabled.
// Used for recoverable per-item conditions such as malformed dates.
func Warn(format string, args ...any) {
	logf(levelWarn, format, args...)
}

// Error prints an error regardless of verbose mode.
func Error(format string, args ...any) {
	logf(levelError, format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

func logf(lvl level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose && lvl != levelError {
		return
	}
	fmt.Fprintf(output, "["+string(lvl)+"] "+format+"\n", args...)
}
