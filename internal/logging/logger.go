// Package logging provides zerolog construction and context propagation.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	// FilePath enables an additional rotating file sink when non-empty.
	FilePath  string
	MaxSizeMB int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
		MaxSizeMB:  10,
	}
}

// New creates a new zerolog logger with the given configuration.
// The returned closer releases the file sink, if any.
func New(cfg Config) (zerolog.Logger, io.Closer) {
	var output io.Writer = os.Stderr
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: cfg.TimeFormat,
		}
	}

	var closer io.Closer = nopCloser{}
	if cfg.FilePath != "" {
		if file, err := NewRotatingFile(cfg.FilePath, cfg.MaxSizeMB); err == nil {
			output = zerolog.MultiLevelWriter(output, file)
			closer = file
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger(), closer
}

// NewFromConfigValues builds a console or json logger from raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}
	logger, _ := New(cfg)
	return logger
}

// NewFromEnv creates a logger based on environment variables
// PPTB_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// PPTB_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("PPTB_LOG_LEVEL"), os.Getenv("PPTB_LOG_FORMAT"))
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
