// Package logging builds the process-wide slog logger.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// New creates a *slog.Logger writing to stderr and installs it as the
// default via slog.SetDefault.
//
// Format "json" produces structured JSON output; anything else produces
// human-readable text. Level is one of debug, info, warn, error
// (case-insensitive) and defaults to info.
func New(level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
