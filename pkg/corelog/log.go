//go:build !logless

// Package corelog provides the package-wide logger used to trace
// profile-generation fallbacks and reparameterization warnings.
package corelog

import (
	"os"

	"github.com/rs/zerolog"
	logger "github.com/rs/zerolog/log"
)

// Log is the shared logger. The default build writes caller-annotated,
// human-readable lines to stderr.
var Log = logger.With().Caller().Logger().Output(zerolog.ConsoleWriter{Out: os.Stderr})

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}
