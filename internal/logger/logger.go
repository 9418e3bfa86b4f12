package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the root logger every component derives from. Pretty output is
// for local development; deployments get single-line JSON.
func New(pretty bool) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if pretty {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
		return zerolog.New(output).With().
			Timestamp().
			Caller().
			Str("service", "clash-arena").
			Logger()
	}

	return zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "clash-arena").
		Logger()
}
