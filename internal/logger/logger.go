// Package logger builds the zerolog logger shared by the server and CLI.
package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/drills/internal/config"
)

// New returns a logger writing to w at the configured level. Format
// "console" gives human-readable lines, anything else JSON.
func New(cfg config.LogConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level '%s': %w", cfg.Level, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := w
	if strings.ToLower(cfg.Format) == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// Init builds a logger with New and installs it as the zerolog global.
func Init(cfg config.LogConfig, w io.Writer) (zerolog.Logger, error) {
	l, err := New(cfg, w)
	if err != nil {
		return l, err
	}
	log.Logger = l
	l.Debug().
		Str("level", cfg.Level).
		Str("format", cfg.Format).
		Msg("logger initialized")
	return l, nil
}
