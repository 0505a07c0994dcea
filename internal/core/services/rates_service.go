package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cambiohoje/cambio_dashboard_app/internal/apperrors"
	"github.com/cambiohoje/cambio_dashboard_app/internal/core/domain"
	"github.com/cambiohoje/cambio_dashboard_app/internal/core/ports/providers"
	portssvc "github.com/cambiohoje/cambio_dashboard_app/internal/core/ports/services"
	"github.com/cambiohoje/cambio_dashboard_app/internal/platform/metrics"
)

// loadErrorPrefix is the user-visible message every fetch failure collapses
// into, regardless of taxonomy; the cause follows the colon.
const loadErrorPrefix = "Erro ao carregar taxas de câmbio"

const defaultRefreshInterval = 5 * time.Minute

// ratesService maintains the fetch lifecycle: the current snapshot, the
// loading flag, the last error and the upstream-reported last-update time,
// refreshed on a fixed cadence and on demand.
type ratesService struct {
	source  providers.QuoteSource
	metrics *metrics.DashboardMetrics
	logger  *slog.Logger

	interval time.Duration

	mu         sync.Mutex
	current    *domain.Snapshot
	inFlight   int
	errMsg     string
	lastUpdate *time.Time
	running    bool
	stopped    bool
	stopCh     chan struct{}
}

// RatesServiceOption configures the rates service.
type RatesServiceOption func(*ratesService)

// WithRefreshInterval overrides the periodic refresh cadence.
func WithRefreshInterval(interval time.Duration) RatesServiceOption {
	return func(s *ratesService) {
		if interval > 0 {
			s.interval = interval
		}
	}
}

// WithRatesMetrics attaches the prometheus bundle.
func WithRatesMetrics(m *metrics.DashboardMetrics) RatesServiceOption {
	return func(s *ratesService) {
		s.metrics = m
	}
}

// WithRatesLogger overrides the component logger.
func WithRatesLogger(logger *slog.Logger) RatesServiceOption {
	return func(s *ratesService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewRatesService creates the rates service around a quote source.
func NewRatesService(source providers.QuoteSource, opts ...RatesServiceOption) portssvc.RatesSvcFacade {
	s := &ratesService{
		source:   source,
		interval: defaultRefreshInterval,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RatesState returns the current fetch-lifecycle state.
func (s *ratesService) RatesState(ctx context.Context) domain.RatesState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// Refresh runs one fetch cycle immediately and returns the resulting state.
// Overlapping invocations are not deduplicated; the last-applied result wins.
func (s *ratesService) Refresh(ctx context.Context) domain.RatesState {
	s.runFetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// Start performs an initial fetch and begins the periodic cadence.
func (s *ratesService) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.logger.Warn("Refresh scheduler already running")
		return
	}
	s.running = true
	s.stopped = false
	s.stopCh = make(chan struct{})
	stopCh := s.stopCh
	s.mu.Unlock()

	// Initial fetch on startup (fire-and-forget)
	go s.runFetch(ctx)

	// Recurring ticker
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.runFetch(ctx)
			}
		}
	}()

	s.logger.Info("Refresh scheduler started", slog.Duration("interval", s.interval))
}

// Stop halts the cadence. Fetches still in flight complete but their
// results are discarded.
func (s *ratesService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	if s.running {
		close(s.stopCh)
	}
	s.running = false
	s.stopped = true
	s.logger.Info("Refresh scheduler stopped")
}

// runFetch executes one fetch and applies its result as a single state
// transition. The lock is not held during the network call, so reads and
// concurrent refreshes stay responsive while a fetch is in flight.
func (s *ratesService) runFetch(ctx context.Context) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.inFlight++
	s.mu.Unlock()

	start := time.Now()
	snapshot, err := s.source.FetchSnapshot(ctx)
	elapsed := time.Since(start)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--

	if s.stopped {
		// Completion after teardown has no effect on torn-down state.
		return
	}

	if err != nil {
		s.errMsg = fmt.Sprintf("%s: %v", loadErrorPrefix, err)
		s.metrics.RecordRefresh(refreshResult(err), elapsed)
		s.logger.Warn("Rate snapshot fetch failed", slog.String("error", err.Error()))
		return
	}

	s.current = &snapshot
	s.errMsg = ""
	observed := snapshot.ObservedAt
	s.lastUpdate = &observed
	s.metrics.RecordRefresh(metrics.ResultSuccess, elapsed)
	s.metrics.RecordLastUpdate(observed)
	s.logger.Info("Rate snapshot updated",
		slog.Time("last_update", observed),
		slog.Int("records", len(snapshot.Records)),
		slog.Duration("fetch_duration", elapsed),
	)
}

func (s *ratesService) stateLocked() domain.RatesState {
	return domain.RatesState{
		Current:    s.current,
		Loading:    s.inFlight > 0,
		ErrMsg:     s.errMsg,
		LastUpdate: s.lastUpdate,
	}
}

// refreshResult maps a fetch error onto its metrics label.
func refreshResult(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrConfiguration):
		return metrics.ResultConfiguration
	case errors.Is(err, apperrors.ErrUpstreamRejected):
		return metrics.ResultUpstream
	default:
		return metrics.ResultTransport
	}
}
