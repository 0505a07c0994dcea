package services

import (
	"math"
	"math/rand"
	"time"

	"github.com/cambiohoje/cambio_dashboard_app/internal/core/domain"
	portssvc "github.com/cambiohoje/cambio_dashboard_app/internal/core/ports/services"
)

// historyService synthesizes chart series. The upstream source has no
// historical endpoint on the free tier, so the series is plausible noise
// around the base rate; a real history provider would replace this behind
// the same interface.
type historyService struct {
	random func() float64
}

// HistoryServiceOption configures the history service.
type HistoryServiceOption func(*historyService)

// WithRandomSource overrides the random source. The function must return
// values uniformly in [0, 1); tests inject fixed sequences to assert exact
// output.
func WithRandomSource(random func() float64) HistoryServiceOption {
	return func(s *historyService) {
		if random != nil {
			s.random = random
		}
	}
}

// NewHistoryService creates the history synthesizer.
func NewHistoryService(opts ...HistoryServiceOption) portssvc.HistorySvc {
	s := &historyService{
		random: rand.Float64,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize returns bucket+1 points walking from the oldest offset to now.
// The 24h range uses hourly offsets with clock labels; all other ranges use
// daily offsets with day/month labels. Every invocation regenerates the
// series from scratch.
func (s *historyService) Synthesize(baseRate float64, r domain.HistoryRange, now time.Time) []domain.HistoryPoint {
	buckets := r.Buckets()
	points := make([]domain.HistoryPoint, 0, buckets+1)

	for i := buckets; i >= 0; i-- {
		var label string
		if r.IsIntraday() {
			label = now.Add(-time.Duration(i) * time.Hour).Format("15:04")
		} else {
			label = now.AddDate(0, 0, -i).Format("02/01")
		}

		noise := (s.random() - 0.5) * 0.2
		points = append(points, domain.HistoryPoint{
			Label: label,
			Rate:  roundTwoPlaces(baseRate + noise),
		})
	}

	return points
}

func roundTwoPlaces(v float64) float64 {
	return math.Round(v*100) / 100
}
