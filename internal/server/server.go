package server

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"time"

	"dockerized/api/internal/config"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Server wires configuration, dependencies and HTTP routing together.
type Server struct {
	cfg      config.Config
	log      zerolog.Logger
	validate *validator.Validate

	// startedAt is captured once at construction and anchors the uptime
	// reported by /info.
	startedAt time.Time
}

// New instantiates the HTTP server and prepares shared dependencies.
func New(cfg config.Config, log zerolog.Logger) *Server {
	return &Server{
		cfg:       cfg,
		log:       log,
		validate:  newValidator(),
		startedAt: time.Now().UTC(),
	}
}

// Run starts the HTTP server and blocks until the context is cancelled or an unrecoverable error occurs.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.routes(),
		ReadTimeout:  s.cfg.HTTP.ReadTimeout,
		WriteTimeout: s.cfg.HTTP.WriteTimeout,
		IdleTimeout:  s.cfg.HTTP.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	s.log.Info().Str("addr", s.cfg.Addr()).Msg("http server listening")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON name so validation details match the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
