package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/records-api/internal/config"
	"github.com/deppfellow/records-api/internal/database"
	"github.com/deppfellow/records-api/internal/handler"
	"github.com/deppfellow/records-api/internal/logger"
	"github.com/deppfellow/records-api/internal/repository"
	"github.com/deppfellow/records-api/internal/router"
	"github.com/deppfellow/records-api/internal/server"
	"github.com/deppfellow/records-api/internal/service"
)

// DefaultContextTimeout bounds migrations at start-up and draining at
// shutdown.
const DefaultContextTimeout = 30 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	if cfg.Primary.Env != "local" {
		ctx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout)
		err := database.Migrate(ctx, &log, cfg)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create services")
	}

	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
