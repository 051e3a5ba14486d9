// Package config holds process-wide configuration, currently the global
// structured logger.
package config

import (
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Logger is the global zerolog logger instance.
//
//nolint:gochecknoglobals // intentionally global for application-wide structured logging
var Logger zerolog.Logger

// InitLogger initializes the package-level Logger: console output on
// stderr, the given level (falling back to Info when it does not parse),
// and a per-invocation trace id so log lines from one command run can be
// correlated.
func InitLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	Logger = zerolog.New(consoleWriter).
		Level(lvl).
		With().
		Timestamp().
		Str("trace_id", ulid.Make().String()).
		Logger()
}
