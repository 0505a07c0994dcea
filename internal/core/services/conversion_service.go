package services

import (
	"math"

	"github.com/cambiohoje/cambio_dashboard_app/internal/core/domain"
	portssvc "github.com/cambiohoje/cambio_dashboard_app/internal/core/ports/services"
	"github.com/cambiohoje/cambio_dashboard_app/internal/platform/metrics"
	"github.com/cambiohoje/cambio_dashboard_app/internal/utils"
)

// conversionService computes cross-currency display values from the latest
// snapshot.
type conversionService struct {
	metrics *metrics.DashboardMetrics
}

// NewConversionService creates the conversion calculator.
func NewConversionService(m *metrics.DashboardMetrics) portssvc.ConversionSvc {
	return &conversionService{metrics: m}
}

// Convert computes (amount * fromRate) / toRate rounded to two decimals.
// Codes missing from the snapshot fall back to rate 1.0 each, a nil snapshot
// falls back for both sides, and a NaN amount renders as "0.00". Invalid
// input is a valid zero-display case here, never an error.
func (s *conversionService) Convert(amount float64, fromCode, toCode string, snapshot *domain.Snapshot) string {
	s.metrics.RecordConversion()

	if math.IsNaN(amount) {
		return "0.00"
	}

	fromRate := 1.0
	if rate, ok := snapshot.RateFor(fromCode); ok {
		fromRate = rate
	}
	toRate := 1.0
	if rate, ok := snapshot.RateFor(toCode); ok {
		toRate = rate
	}

	return utils.FormatDisplayAmount((amount * fromRate) / toRate)
}
