package oklchtheme

import (
	"io"
	"log/slog"
	"os"
)

// LogFormat represents the output format for logs
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// LoggerConfig holds the configuration for the logger
type LoggerConfig struct {
	Verbose bool
	Quiet   bool
	Format  LogFormat
	Output  io.Writer
}

// NewLogger creates a structured logger. Verbose enables debug records,
// quiet keeps errors only.
func NewLogger(config LoggerConfig) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case config.Quiet:
		level = slog.LevelError
	case config.Verbose:
		level = slog.LevelDebug
	}

	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}
	if config.Format == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(slog.NewTextHandler(out, opts))
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
