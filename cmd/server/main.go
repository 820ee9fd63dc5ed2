// Command server runs the impact effects HTTP service: the JSON effects
// and scene API plus health and metrics endpoints.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/pellucidar/impactmap/internal/adapter/http"
	"github.com/pellucidar/impactmap/internal/adapter/neo"
	"github.com/pellucidar/impactmap/internal/config"
	"github.com/pellucidar/impactmap/internal/domain"
	"github.com/pellucidar/impactmap/internal/observability"
)

// readiness reports ready as soon as the process is wired; the service
// holds no connections that could go stale.
type readiness struct{}

func (readiness) CheckReadiness(_ context.Context) error { return nil }

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Initialize catalog lookup (feature-flagged via NEO_ENABLED / NASA_API_KEY).
	var catalog domain.Catalog
	if cfg.CatalogEnabled {
		client := neo.NewClient(cfg.NASAAPIKey, cfg.CatalogTimeout, metrics, logger)
		catalog = neo.NewCachedCatalog(client, cfg.CatalogCacheSize, metrics)
		metrics.CatalogEnabled.Set(1)
		logger.Info("neo catalog enabled", "cache_size", cfg.CatalogCacheSize, "timeout", cfg.CatalogTimeout)
	} else {
		metrics.CatalogEnabled.Set(0)
		logger.Info("neo catalog disabled")
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, readiness{}, catalog, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
