// Command channeld serves the channel registry over HTTP.
//
// Startup order: config, logger (+ New Relic when licensed), database
// pool, repositories, services, handlers, router. SIGINT or SIGTERM
// drains in-flight requests and closes the pool.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/channeld/internal/config"
	"github.com/deppfellow/channeld/internal/handler"
	"github.com/deppfellow/channeld/internal/logger"
	"github.com/deppfellow/channeld/internal/repository"
	"github.com/deppfellow/channeld/internal/router"
	"github.com/deppfellow/channeld/internal/server"
	"github.com/deppfellow/channeld/internal/service"
)

const DefaultContextTimeout = 30

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	loggerService, err := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)
	if err != nil {
		log.Error().Err(err).Msg("new relic disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err = run(ctx, cfg, &log, loggerService)
	stop()

	if err != nil {
		log.Error().Err(err).Msg("server exited with error")
		// os.Exit skips deferred calls, so flush New Relic first.
		loggerService.Shutdown()
		os.Exit(1)
	}

	loggerService.Shutdown()
}

// run wires the application and serves until ctx is cancelled. Startup
// failures are returned instead of exiting.
func run(ctx context.Context, cfg *config.Config, log *zerolog.Logger, loggerService *logger.LoggerService) error {
	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	repos, err := repository.NewRepositories(srv)
	if err != nil {
		_ = srv.Shutdown(context.Background())
		return fmt.Errorf("failed to initialize repositories: %w", err)
	}

	services, err := service.NewServices(srv, repos)
	if err != nil {
		_ = srv.Shutdown(context.Background())
		return fmt.Errorf("could not create services: %w", err)
	}

	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serverErr:
		log.Error().Err(runErr).Msg("server stopped unexpectedly")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
	return runErr
}
