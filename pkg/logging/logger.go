// Package logging provides the zerolog-backed structured logger used across
// planconfig. Library packages never build their own logger: they pull one
// from the context with FromContext so callers decide level, format and
// destination.
//
//	log := logging.FromContext(ctx)
//	log.Debug().Int("fields", n).Msg("Reconciled design fields")
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var (
	defaultLogger = New(os.Stderr)

	// Nop discards everything.
	Nop = zerolog.Nop()
)

// Default returns the process-wide default logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the process-wide default logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
}

// New creates a JSON logger writing to w at the info level.
func New(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(w).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()
}

// NewConsole creates a human-readable logger writing to w.
func NewConsole(w io.Writer, noColor bool) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	})
}
