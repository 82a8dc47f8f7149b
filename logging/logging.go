// Package logging builds the slog logger used for diagnostics output.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Config holds configuration for the logger.
type Config struct {
	Level string
}

// NewLogger creates a new slog.Logger with a JSON handler writing to w.
// The level is parsed from the config; defaults to INFO if invalid or empty.
func NewLogger(config Config, w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       parseLevel(config.Level),
		ReplaceAttr: nil,
	})

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
