// Package logger provides structured logging for the listing scraper.
//
// Everything is written to stderr by default: stdout is reserved for the
// extracted record.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	current *slog.Logger
	mu      sync.RWMutex
)

func init() {
	current = newLogger(Options{})
}

// Options configures the logger.
type Options struct {
	Debug  bool      // include selector misses and other debug detail
	Quiet  bool      // errors only
	JSON   bool      // JSON lines instead of key=value text
	Output io.Writer // default: stderr
}

// Init replaces the package logger.
func Init(opts Options) {
	l := newLogger(opts)

	mu.Lock()
	current = l
	mu.Unlock()
}

func newLogger(opts Options) *slog.Logger {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	if opts.Quiet {
		level = slog.LevelError
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if opts.JSON {
		return slog.New(slog.NewJSONHandler(out, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(out, handlerOpts))
}

func get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Debug logs at debug level.
func Debug(msg string, args ...any) { get().Debug(msg, args...) }

// Info logs at info level.
func Info(msg string, args ...any) { get().Info(msg, args...) }

// Warn logs at warn level.
func Warn(msg string, args ...any) { get().Warn(msg, args...) }

// Error logs at error level.
func Error(msg string, args ...any) { get().Error(msg, args...) }

// With returns a child logger carrying the given attributes.
func With(args ...any) *slog.Logger { return get().With(args...) }
