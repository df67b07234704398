package logger

import (
	"io"
	"log/slog"
	"strings"
)

// New returns a slog.Logger writing to w. level is one of debug, info, warn
// or error; format is text or json. Unknown values fall back to info and text
// and the fallback is logged as a warning.
func New(w io.Writer, level, format string) *slog.Logger {
	var opts slog.HandlerOptions
	var warnings []string

	switch strings.ToLower(level) {
	case "debug":
		opts.Level = slog.LevelDebug
	case "", "info":
		opts.Level = slog.LevelInfo
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
		warnings = append(warnings, "could not parse logger level")
	}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, &opts)
	case "", "text":
		handler = slog.NewTextHandler(w, &opts)
	default:
		handler = slog.NewTextHandler(w, &opts)
		warnings = append(warnings, "could not parse logger format")
	}

	log := slog.New(handler)
	for _, msg := range warnings {
		log.Warn(msg, "level", level, "format", format)
	}
	return log
}
