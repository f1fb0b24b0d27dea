package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Supported values for LoggerConfig.Format.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level  string
	Format string
}

// NewLogger creates a new slog.Logger writing to w.
// The level defaults to INFO and the format to JSON when empty or unknown.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	options := &slog.HandlerOptions{
		AddSource:   false,
		Level:       ParseLevel(config.Level),
		ReplaceAttr: nil,
	}

	if strings.EqualFold(config.Format, FormatText) {
		return slog.New(slog.NewTextHandler(w, options))
	}

	return slog.New(slog.NewJSONHandler(w, options))
}

// ParseLevel maps a case-insensitive level name to a slog.Level.
func ParseLevel(level string) slog.Level {
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
