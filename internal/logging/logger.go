package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// SetupLogger returns a JSON logger on stdout at the given level.
// Unknown or empty levels fall back to info.
func SetupLogger(level string) *slog.Logger {
	return NewLogger(os.Stdout, level)
}

func NewLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
