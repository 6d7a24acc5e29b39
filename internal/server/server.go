package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/coachdesk/internal/bootstrap"
	"github.com/yigit/coachdesk/internal/config"
	"github.com/yigit/coachdesk/internal/db"
	"github.com/yigit/coachdesk/internal/seed"
)

// Server holds the state for the HTTP server.
type Server struct {
	config   *config.Config
	router   *gin.Engine
	deps     *bootstrap.Dependencies
	database *db.PostgresDB
	logger   zerolog.Logger
	http     *http.Server
}

// NewServer loads configuration, restores persisted records, seeds demo
// data and builds the router.
func NewServer(configPath string) (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var database *db.PostgresDB
	if cfg.Persistence.Enabled {
		database, err = bootstrap.SetupDatabase(ctx, cfg, lgr)
		if err != nil {
			return nil, fmt.Errorf("failed to setup database: %w", err)
		}
	} else {
		lgr.Info().Msg("Persistence disabled, records live in memory only")
	}

	deps, err := bootstrap.BuildDependencies(cfg, database, lgr)
	if err != nil {
		if database != nil {
			database.Close()
		}
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	if deps.Persistence != nil {
		if err := deps.Persistence.Restore(ctx); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to restore record store: %w", err)
		}
	}

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(ctx, deps.Services, time.Now(), lgr); err != nil {
			// Demo data is optional
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	return &Server{
		config:   cfg,
		router:   bootstrap.SetupRouter(cfg, deps, lgr),
		deps:     deps,
		database: database,
		logger:   lgr,
	}, nil
}

// Run serves HTTP until SIGINT/SIGTERM or a listener error, then shuts down.
func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s.http = &http.Server{
		Addr:        ":" + s.config.Server.Port,
		Handler:     s.router,
		ReadTimeout: 10 * time.Second,
		// WebSocket subscriptions manage their own write deadlines
		WriteTimeout: 0,
		IdleTimeout:  120 * time.Second,
	}

	// Background workers stop when ctx is cancelled
	var workers sync.WaitGroup
	workers.Add(1)
	go func() {
		defer workers.Done()
		s.deps.Hub.Run(ctx)
	}()
	if s.deps.Persistence != nil {
		workers.Add(1)
		go func() {
			defer workers.Done()
			s.deps.Persistence.Run(ctx, s.config.Persistence.FlushInterval)
		}()
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	var runErr error
	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = fmt.Errorf("error starting server: %w", err)
		}
	case <-ctx.Done():
		s.logger.Info().Msg("Received shutdown signal")
	}

	stop()
	workers.Wait()

	if err := s.Shutdown(context.Background()); err != nil {
		return errors.Join(runErr, err)
	}
	return runErr
}

// Shutdown stops the HTTP server, writes a final snapshot and closes the
// database pool.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
	defer cancel()

	var shutdownErr error

	if s.http != nil {
		s.logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownErr = errors.Join(shutdownErr, err)
		}
	}

	if s.deps.Persistence != nil {
		if err := s.deps.Persistence.Flush(ctx); err != nil {
			s.logger.Error().Err(err).Msg("Final flush failed")
			shutdownErr = errors.Join(shutdownErr, err)
		} else {
			s.logger.Info().Msg("Record store flushed")
		}
	}

	if s.database != nil {
		s.database.Close()
		s.logger.Info().Msg("Database connection pool closed")
	}

	s.logger.Info().Msg("Server shutdown process complete")
	return shutdownErr
}
