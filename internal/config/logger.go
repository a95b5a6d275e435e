package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates the application logger writing to stdout.
func NewLogger(cfg LoggerConfig) zerolog.Logger {
	return NewLoggerTo(cfg, os.Stdout)
}

// NewLoggerTo creates a logger writing to out based on the configuration.
func NewLoggerTo(cfg LoggerConfig, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("app", "frankit").
		Logger()
}
