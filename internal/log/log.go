// ABOUTME: Leveled logging wrapper around charmbracelet/log for all actors
// ABOUTME: Global level via SetLevel; writes to stderr (or a file) to avoid mixing with the PTY output

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"
)

// Level constants matching charmbracelet/log levels.
const (
	LevelDebug = clog.DebugLevel
	LevelInfo  = clog.InfoLevel
	LevelWarn  = clog.WarnLevel
	LevelError = clog.ErrorLevel
)

var (
	mu     sync.RWMutex
	logger = newLogger(os.Stderr, LevelInfo)
	file   *os.File
)

func newLogger(w io.Writer, lvl clog.Level) *clog.Logger {
	return clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "rio-go",
		Level:           lvl,
	})
}

// SetLevel sets the global log level.
func SetLevel(l clog.Level) {
	mu.RLock()
	defer mu.RUnlock()
	logger.SetLevel(l)
}

// GetLevel returns the current log level.
func GetLevel() clog.Level {
	mu.RLock()
	defer mu.RUnlock()
	return logger.GetLevel()
}

// ParseLevel converts a level name; unknown names map to info.
func ParseLevel(name string) clog.Level {
	lvl, err := clog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return LevelInfo
	}
	return lvl
}

// SetOutput redirects log output to w, keeping the current level.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w, logger.GetLevel())
}

// OpenFile redirects output to path in append mode. The TUI owns the
// screen, so interactive runs log to a file.
func OpenFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		_ = file.Close()
	}
	file = f
	logger = newLogger(f, logger.GetLevel())
	return nil
}

// Close releases the log file opened by OpenFile and reverts to stderr.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	logger = newLogger(os.Stderr, logger.GetLevel())
	return err
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Debugf(format, args...)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Infof(format, args...)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Warnf(format, args...)
}

// Error logs an error message.
func Error(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Errorf(format, args...)
}
