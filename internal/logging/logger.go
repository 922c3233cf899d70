// Package logging builds the structured loggers espalier hosts hand to the
// tree controller and its adapters.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates the host logger at the given level, writing to Stderr so that
// Stdout stays free for rendered trees and JSON output.
func New(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter is New with an explicit sink. It standardizes common keys
// ("error" -> "err") so log lines from the controller, the adapters, and
// the host grep the same.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// LevelFromVerbose maps the CLI verbose flag to a log level.
func LevelFromVerbose(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
