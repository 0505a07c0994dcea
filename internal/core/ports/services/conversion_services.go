package services

import (
	"github.com/cambiohoje/cambio_dashboard_app/internal/core/domain"
)

// ConversionSvc computes cross-currency display values.
type ConversionSvc interface {
	// Convert computes (amount * fromRate) / toRate against the snapshot and
	// renders it with two decimals. Unknown codes fall back to rate 1.0 and
	// a NaN amount renders "0.00"; the operation never fails.
	Convert(amount float64, fromCode, toCode string, snapshot *domain.Snapshot) string
}
