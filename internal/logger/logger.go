// Package logger provides verbose logging for the minutes CLI.
// When verbose mode is enabled via the --verbose flag, request traces and
// debug messages are printed to stderr so users can see what the client
// sends to the meeting service. Warnings are always printed.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
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

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// logf writes a prefixed line when verbose is on or always is set.
// Writes hold the exclusive lock so lines never interleave.
func logf(always bool, prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if verbose || always {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf(false, "[DEBUG] ", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf(false, "[INFO] ", format, args...)
}

// Warn prints a warning. Warnings are shown regardless of verbose mode
// because they report work that was silently skipped.
func Warn(format string, args ...any) {
	logf(true, "[WARN] ", format, args...)
}

// Request traces one outbound HTTP call if verbose mode is enabled.
// A status of 0 means no response was received.
func Request(method, url string, status int, elapsed time.Duration) {
	if status == 0 {
		logf(false, "[HTTP] ", "%s %s -> no response (%s)", method, url, elapsed.Round(time.Millisecond))
		return
	}
	logf(false, "[HTTP] ", "%s %s -> %d (%s)", method, url, status, elapsed.Round(time.Millisecond))
}
