package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cambiohoje/cambio_dashboard_app/internal/adapters/quotes"
	"github.com/cambiohoje/cambio_dashboard_app/internal/core/services"
	"github.com/cambiohoje/cambio_dashboard_app/internal/handlers"
	"github.com/cambiohoje/cambio_dashboard_app/internal/middleware"
	"github.com/cambiohoje/cambio_dashboard_app/internal/platform/config"
	"github.com/cambiohoje/cambio_dashboard_app/internal/platform/metrics"
	"github.com/cambiohoje/cambio_dashboard_app/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// @title CDH Backend API
// @version 1.0
// @description Backend for the Câmbio Hoje currency dashboard.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger) // Optional: Set as default logger

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Wire the quote source and the service container. A missing API key is
	// not fatal here: the dashboard starts and reports the failure as state.
	dashboardMetrics := metrics.NewDashboardMetrics(prometheus.DefaultRegisterer)
	quoteSource := quotes.NewExchangeRateAPIClient(
		cfg.ExchangeRateAPIBaseURL,
		cfg.ExchangeRateAPIKey,
		&http.Client{Timeout: cfg.HTTPClientTimeout},
	)
	container := services.NewServiceContainer(cfg, quoteSource, dashboardMetrics, logger)

	// Optional product analytics; stays inert without an API key
	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)

	r := gin.New()

	// Global middleware (logging, recovery, CORS, analytics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(buildCORSConfig(cfg.CORSAllowedOrigins)))
	r.Use(middleware.PosthogMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	// Graceful shutdown context
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start the refresh scheduler: one fetch immediately, then on a fixed cadence
	container.Rates.Start(ctx)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	logger.Info("Shutting down gracefully...")

	container.Rates.Stop()
	posthogClient.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", slog.String("error", err.Error()))
	}
	logger.Info("Shutdown complete")
}

// buildCORSConfig translates the comma-separated origins setting into a
// gin-contrib cors config. "*" (the default) allows every origin.
func buildCORSConfig(allowedOrigins string) cors.Config {
	corsCfg := cors.DefaultConfig()
	if allowedOrigins == "" || allowedOrigins == "*" {
		corsCfg.AllowAllOrigins = true
		return corsCfg
	}

	origins := strings.Split(allowedOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	corsCfg.AllowOrigins = origins
	return corsCfg
}
