// Package logging configures diagnostic logging with zerolog. Diagnostics
// go to stderr so they never mix with the report on stdout.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // console, json
}

// DefaultConfig keeps the console quiet unless something goes wrong.
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "console",
	}
}

// New builds a logger writing to out.
func New(cfg Config, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.WarnLevel
	}

	w := out
	if cfg.Format != "json" {
		w = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.Kitchen,
		}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}
