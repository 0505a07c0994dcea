package services

import (
	"context"

	"github.com/cambiohoje/cambio_dashboard_app/internal/core/domain"
	"github.com/cambiohoje/cambio_dashboard_app/internal/dto"
)

// DashboardReaderSvc defines read access to the assembled view-state.
type DashboardReaderSvc interface {
	// State returns the full presentation state for rendering.
	State(ctx context.Context) domain.DashboardState

	// HistoryFor synthesizes a series for an arbitrary (currency, range)
	// pair without touching the active selections.
	HistoryFor(ctx context.Context, code string, rangeRaw string) ([]domain.HistoryPoint, error)

	// ListAlerts returns all alert rules in creation order.
	ListAlerts(ctx context.Context) []domain.AlertRule
}

// DashboardIntentSvc defines the state transitions, one per presentation
// intent.
type DashboardIntentSvc interface {
	// SelectCurrency switches the charted currency and returns the new state.
	SelectCurrency(ctx context.Context, code string) domain.DashboardState

	// SelectRange switches the chart range and returns the new state.
	SelectRange(ctx context.Context, rangeRaw string) (domain.DashboardState, error)

	// SubmitConversion computes a conversion display value and records it in
	// the view-state.
	SubmitConversion(ctx context.Context, req dto.ConvertRequest) string

	// SubmitAlert registers a new alert rule and returns it with its
	// positional index.
	SubmitAlert(ctx context.Context, req dto.CreateAlertRequest) (domain.AlertRule, int)

	// RemoveAlert deletes the rule at the positional index.
	RemoveAlert(ctx context.Context, index int) error

	// Refresh re-runs the fetch cycle immediately and returns the resulting
	// rates state.
	Refresh(ctx context.Context) domain.RatesState
}

// DashboardSvcFacade combines all dashboard service interfaces.
type DashboardSvcFacade interface {
	DashboardReaderSvc
	DashboardIntentSvc
}
