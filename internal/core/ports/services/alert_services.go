package services

import (
	"context"

	"github.com/cambiohoje/cambio_dashboard_app/internal/core/domain"
	"github.com/cambiohoje/cambio_dashboard_app/internal/dto"
)

// AlertReaderSvc defines read operations for alert rules.
type AlertReaderSvc interface {
	// ListAlerts returns all rules in creation order.
	ListAlerts(ctx context.Context) []domain.AlertRule
}

// AlertWriterSvc defines write operations for alert rules.
type AlertWriterSvc interface {
	// AddAlert appends a rule and returns it with its positional index.
	// Duplicates are permitted.
	AddAlert(ctx context.Context, req dto.CreateAlertRequest) (domain.AlertRule, int)

	// RemoveAlert deletes the rule at the positional index, preserving the
	// relative order of the remaining rules.
	RemoveAlert(ctx context.Context, index int) error
}

// AlertSvcFacade combines all alert-related service interfaces.
type AlertSvcFacade interface {
	AlertReaderSvc
	AlertWriterSvc
}
