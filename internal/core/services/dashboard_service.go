package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cambiohoje/cambio_dashboard_app/internal/apperrors"
	"github.com/cambiohoje/cambio_dashboard_app/internal/core/domain"
	portssvc "github.com/cambiohoje/cambio_dashboard_app/internal/core/ports/services"
	"github.com/cambiohoje/cambio_dashboard_app/internal/dto"
)

// fallbackBaseRate anchors the synthesized history when no snapshot or no
// matching currency record exists yet.
const fallbackBaseRate = 5.0

const (
	defaultSelectedCurrency = "USD"
	defaultSelectedRange    = domain.RangeWeek
)

// dashboardService is the single coordinating state container: it owns the
// UI selections and the last conversion display value, memoizes the active
// history series, and composes the other services into the view-state. All
// mutations go through one transition method per presentation intent.
type dashboardService struct {
	rates      portssvc.RatesSvcFacade
	history    portssvc.HistorySvc
	conversion portssvc.ConversionSvc
	alerts     portssvc.AlertSvcFacade

	mu               sync.Mutex
	selectedCurrency string
	selectedRange    domain.HistoryRange
	conversionResult string
	historyPoints    []domain.HistoryPoint
	historySnapshot  *domain.Snapshot // snapshot the memoized series was generated against
}

// NewDashboardService creates the dashboard state container.
func NewDashboardService(
	rates portssvc.RatesSvcFacade,
	history portssvc.HistorySvc,
	conversion portssvc.ConversionSvc,
	alerts portssvc.AlertSvcFacade,
) portssvc.DashboardSvcFacade {
	return &dashboardService{
		rates:            rates,
		history:          history,
		conversion:       conversion,
		alerts:           alerts,
		selectedCurrency: defaultSelectedCurrency,
		selectedRange:    defaultSelectedRange,
	}
}

// State assembles the full presentation state. The history series is
// regenerated only when the (currency, range, snapshot) combination changed
// since it was last generated, and is stable between changes.
func (s *dashboardService) State(ctx context.Context) domain.DashboardState {
	ratesState := s.rates.RatesState(ctx)

	s.mu.Lock()
	s.refreshHistoryLocked(ratesState.Current)
	state := domain.DashboardState{
		Rates:            ratesState,
		SelectedCurrency: s.selectedCurrency,
		SelectedRange:    s.selectedRange,
		History:          s.historyPoints,
		ConversionResult: s.conversionResult,
	}
	s.mu.Unlock()

	state.Alerts = s.alerts.ListAlerts(ctx)
	return state
}

// HistoryFor synthesizes a series for an arbitrary (currency, range) pair
// without mutating the active selections or the memoized series.
func (s *dashboardService) HistoryFor(ctx context.Context, code string, rangeRaw string) ([]domain.HistoryPoint, error) {
	r, err := domain.ParseHistoryRange(rangeRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	base := fallbackBaseRate
	if rate, ok := s.rates.RatesState(ctx).Current.RateFor(code); ok {
		base = rate
	}
	return s.history.Synthesize(base, r, time.Now()), nil
}

// ListAlerts returns all alert rules in creation order.
func (s *dashboardService) ListAlerts(ctx context.Context) []domain.AlertRule {
	return s.alerts.ListAlerts(ctx)
}

// SelectCurrency switches the charted currency. Unknown codes are tolerated;
// the history then anchors on the fallback base rate.
func (s *dashboardService) SelectCurrency(ctx context.Context, code string) domain.DashboardState {
	s.mu.Lock()
	if code != s.selectedCurrency {
		s.selectedCurrency = code
		s.historyPoints = nil
	}
	s.mu.Unlock()

	return s.State(ctx)
}

// SelectRange switches the chart range.
func (s *dashboardService) SelectRange(ctx context.Context, rangeRaw string) (domain.DashboardState, error) {
	r, err := domain.ParseHistoryRange(rangeRaw)
	if err != nil {
		return domain.DashboardState{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	s.mu.Lock()
	if r != s.selectedRange {
		s.selectedRange = r
		s.historyPoints = nil
	}
	s.mu.Unlock()

	return s.State(ctx), nil
}

// SubmitConversion computes the conversion display value against the latest
// snapshot and records it in the view-state.
func (s *dashboardService) SubmitConversion(ctx context.Context, req dto.ConvertRequest) string {
	amount := parseAmount(req.Amount)
	snapshot := s.rates.RatesState(ctx).Current
	result := s.conversion.Convert(amount, req.From, req.To, snapshot)

	s.mu.Lock()
	s.conversionResult = result
	s.mu.Unlock()

	return result
}

// SubmitAlert registers a new alert rule and returns it with its index.
func (s *dashboardService) SubmitAlert(ctx context.Context, req dto.CreateAlertRequest) (domain.AlertRule, int) {
	return s.alerts.AddAlert(ctx, req)
}

// RemoveAlert deletes the rule at the positional index.
func (s *dashboardService) RemoveAlert(ctx context.Context, index int) error {
	return s.alerts.RemoveAlert(ctx, index)
}

// Refresh re-runs the fetch cycle immediately and returns the resulting
// rates state. A new snapshot invalidates the memoized history on the next
// read through the pointer comparison in refreshHistoryLocked.
func (s *dashboardService) Refresh(ctx context.Context) domain.RatesState {
	return s.rates.Refresh(ctx)
}

// refreshHistoryLocked regenerates the memoized series when invalidated by a
// selection change (historyPoints nil) or by a snapshot replacement.
func (s *dashboardService) refreshHistoryLocked(current *domain.Snapshot) {
	if s.historyPoints != nil && s.historySnapshot == current {
		return
	}

	base := fallbackBaseRate
	if rate, ok := current.RateFor(s.selectedCurrency); ok {
		base = rate
	}

	s.historyPoints = s.history.Synthesize(base, s.selectedRange, time.Now())
	s.historySnapshot = current
}

// parseAmount maps the raw form value onto the calculator's numeric input.
// Absent or non-numeric values become NaN, which the calculator renders as
// "0.00".
func parseAmount(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
