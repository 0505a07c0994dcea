package services

import (
	"time"

	"github.com/cambiohoje/cambio_dashboard_app/internal/core/domain"
)

// HistorySvc synthesizes chartable rate series. There is no real historical
// endpoint upstream; implementations generate plausible data around a base
// rate. The interface is the seam a real history provider would replace.
type HistorySvc interface {
	// Synthesize returns bucket+1 points for the range, anchored at now,
	// each rate within ±0.1 of baseRate.
	Synthesize(baseRate float64, r domain.HistoryRange, now time.Time) []domain.HistoryPoint
}
