// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// FormatJSON writes one JSON object per line.
	FormatJSON = "json"
	// FormatConsole writes human readable lines.
	FormatConsole = "console"
)

// Config holds logger configuration.
type Config struct {
	Level       string
	Format      string
	ServiceName string
}

// New builds a logger writing to w.
func New(cfg Config, w io.Writer) zerolog.Logger {
	if strings.EqualFold(cfg.Format, FormatConsole) {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(w).With().Timestamp()
	if cfg.ServiceName != "" {
		ctx = ctx.Str("service", cfg.ServiceName)
	}
	return ctx.Logger().Level(ParseLevel(cfg.Level))
}

// Setup replaces the global logger and returns it.
func Setup(cfg Config) zerolog.Logger {
	logger := New(cfg, os.Stdout)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	log.Logger = logger
	return logger
}

// ParseLevel converts a level name, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
