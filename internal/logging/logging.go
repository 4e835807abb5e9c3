// Package logging builds the slog loggers used across routedoc.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

// Config controls the process logger.
type Config struct {
	Level      string
	Output     io.Writer
	JSON       bool
	Timestamps bool
}

func DefaultConfig() Config {
	return Config{Level: "info", Output: os.Stderr}
}

// New returns a slog logger backed by a charmbracelet/log handler.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := charmlog.Options{
		Level:           ParseLevel(cfg.Level),
		ReportTimestamp: cfg.Timestamps,
		Prefix:          "routedoc",
	}
	if cfg.JSON {
		opts.Formatter = charmlog.JSONFormatter
	}
	return slog.New(charmlog.NewWithOptions(out, opts))
}

// ParseLevel maps a level name to a charmbracelet/log level; unknown names
// mean info.
func ParseLevel(level string) charmlog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return charmlog.DebugLevel
	case "warn", "warning":
		return charmlog.WarnLevel
	case "error":
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

// WithComponent tags every record of l with the component name.
func WithComponent(l *slog.Logger, component string) *slog.Logger {
	return OrDiscard(l).With("component", component)
}

// OrDiscard returns l, or a logger that drops everything when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l
}
