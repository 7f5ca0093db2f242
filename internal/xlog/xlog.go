// Package xlog provides the structured logging setup shared by both
// CLI entrypoints. It wraps log/slog rather than inventing a logging
// format of its own.
package xlog

import (
	"io"
	"log/slog"
	"os"
)

// New returns a text-handler slog.Logger writing to w at the given
// level. Both CLIs call this once at startup with os.Stderr.
func New(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// Default returns a logger at INFO level writing to os.Stderr,
// suitable for the common case of either CLI's main.
func Default() *slog.Logger {
	return New(os.Stderr, slog.LevelInfo)
}
