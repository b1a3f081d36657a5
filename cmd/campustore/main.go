// Command campustore runs the campustore API server and its database
// migrations.
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

	"github.com/chanakya-dev/campustore/internal/config"
	"github.com/chanakya-dev/campustore/internal/database"
	"github.com/chanakya-dev/campustore/internal/handler"
	"github.com/chanakya-dev/campustore/internal/logger"
	"github.com/chanakya-dev/campustore/internal/middleware"
	"github.com/chanakya-dev/campustore/internal/repository"
	"github.com/chanakya-dev/campustore/internal/router"
	"github.com/chanakya-dev/campustore/internal/server"
	"github.com/chanakya-dev/campustore/internal/service"
	"github.com/spf13/cobra"
)

// shutdownTimeout bounds graceful shutdown of inflight requests and
// resource teardown.
const shutdownTimeout = 30 * time.Second

func main() {
	root := &cobra.Command{
		Use:           "campustore",
		Short:         "Campustore API server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(serveCmd(), migrateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// serveCmd starts the HTTP server and blocks until SIGINT/SIGTERM.
func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

// migrateCmd applies pending schema migrations and exits.
func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			log, loggerService, err := logger.New(cfg)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			defer loggerService.Shutdown(10 * time.Second)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()

			return database.Migrate(ctx, log, cfg)
		},
	}
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, loggerService, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	s, err := server.New(cfg, log, loggerService)
	if err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	repos := repository.NewRepositories(s)
	services, err := service.NewService(s, repos)
	if err != nil {
		return fmt.Errorf("initializing services: %w", err)
	}
	handlers := handler.NewHandlers(s, services)
	middlewares := middleware.NewMiddlewares(s)

	e := router.New(handlers, middlewares)
	s.SetupHTTPServer(e)

	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return err
	}

	loggerService.Shutdown(10 * time.Second)
	log.Info().Msg("server stopped")
	return nil
}
