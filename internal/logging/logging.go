// Package logging configures zerolog for the demo binary.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger and returns it. level is a
// zerolog level name ("debug", "info", ...); unknown values fall back
// to info. pretty switches from JSON to the human console writer.
func Setup(level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var w io.Writer = os.Stderr
	if pretty {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	logger := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	log.Logger = logger
	return logger
}
