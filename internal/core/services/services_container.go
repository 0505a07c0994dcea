package services

import (
	"log/slog"

	"github.com/cambiohoje/cambio_dashboard_app/internal/core/ports/providers"
	portssvc "github.com/cambiohoje/cambio_dashboard_app/internal/core/ports/services"
	"github.com/cambiohoje/cambio_dashboard_app/internal/platform/config"
	"github.com/cambiohoje/cambio_dashboard_app/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	source providers.QuoteSource,
	m *metrics.DashboardMetrics,
	logger *slog.Logger,
) *portssvc.ServiceContainer {
	// Create the container structure first
	container := &portssvc.ServiceContainer{}

	// Initialize the rates scheduler first since the dashboard depends on it
	container.Rates = NewRatesService(
		source,
		WithRefreshInterval(cfg.RefreshInterval),
		WithRatesMetrics(m),
		WithRatesLogger(logger),
	)

	container.History = NewHistoryService()
	container.Conversion = NewConversionService(m)
	container.Alert = NewAlertService(m)

	// The dashboard coordinates the others into one view-state
	container.Dashboard = NewDashboardService(
		container.Rates,
		container.History,
		container.Conversion,
		container.Alert,
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.RatesSvcFacade     = (*ratesService)(nil)
	_ portssvc.HistorySvc         = (*historyService)(nil)
	_ portssvc.ConversionSvc      = (*conversionService)(nil)
	_ portssvc.AlertSvcFacade     = (*alertService)(nil)
	_ portssvc.DashboardSvcFacade = (*dashboardService)(nil)
)
