package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a zerolog Logger writing to stderr. Stdout is reserved for the
// updated/alert signal lines. APP_ENV=dev (or development) uses a
// human-friendly console writer.
func New(env string) zerolog.Logger {
	l := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if env == "dev" || env == "development" {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}
	return l
}
