// Package colors provides color output utilities for the command line.
package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Color constants
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Reset  = "\033[0m"
)

const checkmark = "✓"

// Logger defines the interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	mu           sync.RWMutex
	debugEnabled bool
	quiet        bool
	logger       Logger
	stdout       io.Writer = os.Stdout
	stderr       io.Writer = os.Stderr
)

func init() {
	if val := os.Getenv("COMMENTVIEW_DEBUG"); val == "true" || val == "1" {
		debugEnabled = true
	}
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugEnabled = enabled
}

// SetQuiet suppresses informational and success output. Errors and
// warnings are always printed.
func SetQuiet(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	quiet = enabled
}

// SetLogger sets the structured logger to mirror console output.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetOutput redirects console output. Nil writers restore the process streams.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout, stderr = out, errOut
}

type level int

const (
	levelDebug level = iota
	levelInfo
	levelSuccess
	levelWarn
	levelError
)

// emit mirrors msg to the structured logger and prints it.
func emit(lvl level, w func() io.Writer, format string, msg string) {
	mu.RLock()
	l, dbg, q, out := logger, debugEnabled, quiet, w()
	mu.RUnlock()

	if lvl == levelDebug && !dbg {
		return
	}
	if l != nil {
		switch lvl {
		case levelDebug:
			l.Debug(msg)
		case levelInfo:
			l.Info(msg)
		case levelSuccess:
			l.Info(msg, "type", "success")
		case levelWarn:
			l.Warn(msg)
		case levelError:
			l.Error(msg)
		}
	}
	if q && (lvl == levelInfo || lvl == levelSuccess) {
		return
	}
	if _, err := fmt.Fprintf(out, format, msg); err != nil {
		// last resort, no colors and no recursion
		fmt.Fprintf(os.Stderr, "failed to print message: %v\n", err)
	}
}

func errWriter() io.Writer { return stderr }
func outWriter() io.Writer { return stdout }

// Error outputs an error message to stderr.
func Error(msgs ...string) {
	emit(levelError, errWriter, Red+"Error:"+Reset+" %s"+Reset+"\n", strings.Join(msgs, " "))
}

// Success outputs a success message to stdout.
func Success(msgs ...string) {
	emit(levelSuccess, outWriter, Green+checkmark+Reset+" %s"+Reset+"\n", strings.Join(msgs, " "))
}

// Warning outputs a warning message to stderr.
func Warning(msgs ...string) {
	emit(levelWarn, errWriter, Yellow+"Warning:"+Reset+" %s"+Reset+"\n", strings.Join(msgs, " "))
}

// Info outputs an informational message to stdout.
func Info(msgs ...string) {
	emit(levelInfo, outWriter, Blue+"%s"+Reset+"\n", strings.Join(msgs, " "))
}

// LogInfo outputs an informational message to stderr, keeping stdout clean
// for machine-readable output.
func LogInfo(msgs ...string) {
	emit(levelInfo, errWriter, Blue+"%s"+Reset+"\n", strings.Join(msgs, " "))
}

// Debug outputs a debug message to stderr if debug is enabled.
func Debug(msgs ...string) {
	emit(levelDebug, errWriter, Cyan+"Debug:"+Reset+" %s"+Reset+"\n", strings.Join(msgs, " "))
}
