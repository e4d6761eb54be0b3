// Package server provides the local harness HTTP server. It feeds posted
// event documents through the same normalize/handle/encode pipeline the
// Lambda entrypoint runs, so trigger payloads can be exercised without a
// deployment.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fnbridge/fnbridge/internal/app"
	"github.com/fnbridge/fnbridge/internal/bridge"
	"github.com/fnbridge/fnbridge/internal/config"
	"github.com/fnbridge/fnbridge/internal/constants"
)

// Run starts the local harness HTTP server and blocks until shutdown.
func Run(ctx context.Context, cfg *config.Config, b *bridge.Bridge, handler app.Handler, log *slog.Logger) error {
	router := NewRouter(b, handler, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  constants.ServerReadTimeout,
		WriteTimeout: constants.ServerWriteTimeout,
		IdleTimeout:  constants.ServerIdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("starting local harness server",
			"port", cfg.Port,
			"log_level", cfg.LogLevel,
		)
		log.Debug("invoke endpoint available",
			"url", fmt.Sprintf("http://localhost:%d/invoke", cfg.Port),
		)

		if serveErr := srv.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
			serverErrors <- fmt.Errorf("failed to start server: %w", serveErr)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case runErr := <-serverErrors:
		return runErr
	case <-quit:
		log.Info("shutting down local harness server...")
	case <-ctx.Done():
		log.Info("shutting down local harness server...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), constants.ServerShutdownTimeout)
	defer shutdownCancel()

	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		return fmt.Errorf("server shutdown error: %w", shutdownErr)
	}

	log.Info("local harness server shutdown complete")
	return nil
}
