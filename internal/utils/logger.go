package utils

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger builds a text logger on w and makes it the default. verbose
// forces debug level; otherwise LOG_LEVEL (debug, info, warn, error) applies.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := ParseLevel(GetEnvDefault("LOG_LEVEL", "info"))
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps a level name to slog; unknown names mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
