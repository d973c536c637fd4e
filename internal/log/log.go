// Package log wraps log/slog for a full-screen terminal program. While the
// editor owns the raw screen, anything below warn is kept off stderr so log
// output never tears the frame; a debug file captures everything instead.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

var logger = slog.Default()
var debugFile *dailyFile

// Options configures the global logger.
type Options struct {
	// Verbose enables debug/info output to stderr (non-interactive only).
	Verbose bool
	// Interactive suppresses debug/info to stderr regardless of Verbose,
	// since stderr shares the screen with the raw-mode frame.
	Interactive bool
	// DebugDir is the directory for debug log files. Empty disables file
	// logging.
	DebugDir string
	// RetentionDays is how many days of debug files to keep (0 = no cleanup).
	RetentionDays int
	// Stderr overrides the stderr writer (for testing).
	Stderr io.Writer
}

// Init installs the global logger.
func Init(opts Options) error {
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	stderrLevel := slog.LevelWarn
	if opts.Verbose && !opts.Interactive {
		stderrLevel = slog.LevelDebug
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: stderrLevel}),
	}

	if opts.DebugDir != "" {
		if opts.RetentionDays > 0 {
			cleanup(opts.DebugDir, opts.RetentionDays)
		}
		df, err := newDailyFile(opts.DebugDir)
		if err != nil {
			return err
		}
		debugFile = df
		handlers = append(handlers, slog.NewJSONHandler(df, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	logger = slog.New(&multiHandler{handlers: handlers})
	slog.SetDefault(logger)
	return nil
}

// Close flushes and closes the debug file if one was opened.
func Close() {
	if debugFile != nil {
		debugFile.Close()
		debugFile = nil
	}
}

// multiHandler fans out log records to multiple handlers.
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.handlers {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	hs := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		hs[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: hs}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	hs := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		hs[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: hs}
}

// Debug logs a debug message.
func Debug(msg string, args ...any) { logger.Debug(msg, args...) }

// Info logs an info message.
func Info(msg string, args ...any) { logger.Info(msg, args...) }

// Warn logs a warning message.
func Warn(msg string, args ...any) { logger.Warn(msg, args...) }

// Error logs an error message.
func Error(msg string, args ...any) { logger.Error(msg, args...) }

// With returns a logger carrying additional context.
func With(args ...any) *slog.Logger { return logger.With(args...) }
