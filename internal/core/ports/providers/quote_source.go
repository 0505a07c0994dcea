package providers

import (
	"context"

	"github.com/cambiohoje/cambio_dashboard_app/internal/core/domain"
)

// QuoteSource fetches one normalized snapshot of rates for the supported
// currency set. Implementations must return an error from the apperrors
// fetch taxonomy rather than panic; callers always receive a usable result
// or a classified failure.
type QuoteSource interface {
	FetchSnapshot(ctx context.Context) (domain.Snapshot, error)
}
