// Package logger configures structured logging for the command line.
// It wraps log/slog with a text handler that omits timestamps.
package logger

import (
	"io"
	"log/slog"
)

// Level returns the minimum level shown for the given verbosity.
// Warnings are always shown; run details appear with verbose.
func Level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// New returns a logger writing key=value lines to w.
func New(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       Level(verbose),
		ReplaceAttr: dropTime,
	}))
}

// dropTime removes the top-level time attribute.
func dropTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
