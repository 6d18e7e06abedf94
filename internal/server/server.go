// Package server defines the Server container that composes the app's main
// dependencies and owns the HTTP server lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/records-api/internal/config"
	"github.com/deppfellow/records-api/internal/database"
	"github.com/rs/zerolog"

	loggerPkg "github.com/deppfellow/records-api/internal/logger"
)

// Server is the application container shared by every layer. It is not the
// HTTP server itself.
type Server struct {
	Config *config.Config
	Logger *zerolog.Logger

	// LoggerService holds the New Relic application, which may be nil.
	LoggerService *loggerPkg.LoggerService

	DB *database.Database

	httpServer *http.Server
}

// New connects to PostgreSQL and builds the container.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	db, err := database.New(cfg, logger, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
	}, nil
}

// SetupHTTPServer configures the net/http server around handler. Timeouts
// come from config, in seconds.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start blocks serving HTTP until Shutdown is called. It returns
// http.ErrServerClosed after a graceful shutdown.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting connections, waits for in-flight requests until
// ctx expires and then closes the database pool.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
	}

	return nil
}
