package services

import (
	"context"

	"github.com/cambiohoje/cambio_dashboard_app/internal/core/domain"
)

// RatesReaderSvc defines read access to the fetch-lifecycle state.
type RatesReaderSvc interface {
	// RatesState returns the current snapshot, loading flag, error message
	// and last-update timestamp.
	RatesState(ctx context.Context) domain.RatesState
}

// RatesRefresherSvc defines the manual refresh operation.
type RatesRefresherSvc interface {
	// Refresh runs one fetch cycle immediately and returns the resulting
	// state. A failed fetch is reported inside the state, not as an error.
	Refresh(ctx context.Context) domain.RatesState
}

// RatesSchedulerSvc defines the periodic refresh lifecycle.
type RatesSchedulerSvc interface {
	// Start performs an initial fetch and begins the periodic cadence.
	Start(ctx context.Context)

	// Stop halts the cadence; fetch completions arriving afterwards are
	// discarded.
	Stop()
}

// RatesSvcFacade combines all rate-scheduling service interfaces.
type RatesSvcFacade interface {
	RatesReaderSvc
	RatesRefresherSvc
	RatesSchedulerSvc
}
