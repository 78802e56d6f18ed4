package logger

import (
	"io"
	"log/slog"
	"os"
)

var defaultLogger *slog.Logger

// Init installs the process-wide logger: human-readable text in development
// or debug mode, JSON otherwise. Output goes to stdout for container logs.
func Init(env string, debug bool) *slog.Logger {
	return InitWithWriter(os.Stdout, env, debug)
}

func InitWithWriter(w io.Writer, env string, debug bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	if debug {
		opts.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if debug || env == "development" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	defaultLogger = slog.New(handler).With("service", "flicks")
	slog.SetDefault(defaultLogger)
	return defaultLogger
}

// Default returns the default logger instance
func Default() *slog.Logger {
	if defaultLogger == nil {
		return slog.Default()
	}
	return defaultLogger
}
