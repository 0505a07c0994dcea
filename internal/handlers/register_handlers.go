package handlers

import (
	"log"

	portssvc "github.com/cambiohoje/cambio_dashboard_app/internal/core/ports/services"
	"github.com/cambiohoje/cambio_dashboard_app/internal/middleware"
	"github.com/cambiohoje/cambio_dashboard_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Service banner
	r.GET("/", getHome)

	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	// Rate-limit the v1 group so request floods cannot drain the upstream
	// quote API quota
	if limiterInstance, err := middleware.NewRateLimiter(cfg.RateLimit); err == nil {
		v1.Use(middleware.RateLimit(limiterInstance))
	} else {
		log.Printf("Warning: RATE_LIMIT %q is invalid, rate limiting disabled: %v\n", cfg.RateLimit, err)
	}

	// Delegate route registration to specific handlers, passing required services
	registerRatesRoutes(v1, service.Rates)
	registerDashboardRoutes(v1, service.Dashboard)
	registerHistoryRoutes(v1, service.Dashboard)
	registerConversionRoutes(v1, service.Dashboard)
	registerAlertRoutes(v1, service.Dashboard)
}
