// Package logger builds the process logger.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a zerolog logger at the given level. Development gets the
// console writer, everything else logs JSON to stderr.
func New(env, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(lvl).
			With().Timestamp().
			Logger()
	}
	return zerolog.New(os.Stderr).
		Level(lvl).
		With().Timestamp().
		Logger()
}
