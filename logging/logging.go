package logging

import (
	"io"
	"log/slog"
	"strings"
)

//go:generate go run github.com/0xalexb/hjarta-config/cmd/layergen --type LoggerConfig

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level  string `default:"info" env:"LOG_LEVEL"`
	Format string `default:"json" env:"LOG_FORMAT"`
}

// DefaultConfig returns the configuration used when nothing else is set.
func DefaultConfig() LoggerConfig {
	return LoggerConfig{Level: "info", Format: "json"}
}

// NewLogger creates a new slog.Logger writing to w.
// The level is parsed from the config; defaults to INFO if invalid or empty.
// Format "text" selects the text handler, anything else JSON.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource:   false,
		Level:       parseLevel(config.Level),
		ReplaceAttr: nil,
	}

	var handler slog.Handler
	if strings.EqualFold(config.Format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

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
