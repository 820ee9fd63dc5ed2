package observability

import (
	"log/slog"
	"os"
	"strings"
)

// LoggerConfig selects the handler format and minimum level.
type LoggerConfig interface {
	LoggerLevel() string
	LoggerFormat() string
}

// NewLogger builds a slog.Logger writing to stderr. Format "json" (the
// default) or "text"; unknown levels fall back to info.
func NewLogger(cfg LoggerConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LoggerLevel())}

	var handler slog.Handler
	if strings.EqualFold(cfg.LoggerFormat(), "text") {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
