package logging

import (
	"os"
	"strings"
	"time"

	"dockerized/api/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New builds the service logger from configuration. Records are emitted as one
// JSON object per line with an upper-case level field; the development
// environment swaps in a human-readable console writer instead.
func New(cfg config.Config) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.LevelFieldMarshalFunc = func(l zerolog.Level) string {
		return strings.ToUpper(l.String())
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	logger := log.Level(level).With().Str("service", cfg.ServiceName).Str("env", cfg.Env).Logger()
	if cfg.IsDevelopment() {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC822})
	}
	return logger
}
