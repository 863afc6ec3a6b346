// Package main wires configuration, dependencies, and HTTP server startup.
//
// @Title Dockerized API
// @Version 1.0.0
// @Description A production-ready Dockerized API with CI/CD.
// @Server http://localhost:8000 Local development
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"dockerized/api/internal/config"
	"dockerized/api/internal/logging"
	"dockerized/api/internal/server"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	logger := logging.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	if err := srv.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
