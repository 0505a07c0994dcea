package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cambiohoje/cambio_dashboard_app/internal/apperrors"
	"github.com/cambiohoje/cambio_dashboard_app/internal/core/domain"
	portssvc "github.com/cambiohoje/cambio_dashboard_app/internal/core/ports/services"
	"github.com/cambiohoje/cambio_dashboard_app/internal/dto"
	"github.com/cambiohoje/cambio_dashboard_app/internal/platform/metrics"
)

// alertService keeps user alert rules in memory, in creation order. Rules
// live for the process lifetime only and are never evaluated against live
// rates; they exist so the UI can render and manage the list.
type alertService struct {
	metrics *metrics.DashboardMetrics

	mu    sync.RWMutex
	rules []domain.AlertRule
}

// NewAlertService creates the alert registry.
func NewAlertService(m *metrics.DashboardMetrics) portssvc.AlertSvcFacade {
	return &alertService{metrics: m}
}

// ListAlerts returns a copy of all rules in creation order.
func (s *alertService) ListAlerts(ctx context.Context) []domain.AlertRule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rules := make([]domain.AlertRule, len(s.rules))
	copy(rules, s.rules)
	return rules
}

// AddAlert appends a rule and returns it with its positional index.
// Duplicates are permitted; beyond the binding requireds there is no
// numeric-range, sign or currency-membership check.
func (s *alertService) AddAlert(ctx context.Context, req dto.CreateAlertRequest) (domain.AlertRule, int) {
	rule := domain.AlertRule{
		Currency:   req.Currency,
		TargetRate: *req.TargetRate,
		Direction:  domain.AlertDirection(req.Direction),
		CreatedAt:  time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = append(s.rules, rule)
	s.metrics.RecordActiveAlerts(len(s.rules))
	return rule, len(s.rules) - 1
}

// RemoveAlert deletes the rule at the positional index; the relative order
// of the remaining rules is preserved.
func (s *alertService) RemoveAlert(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.rules) {
		return fmt.Errorf("%w: no alert at index %d", apperrors.ErrNotFound, index)
	}

	s.rules = append(s.rules[:index], s.rules[index+1:]...)
	s.metrics.RecordActiveAlerts(len(s.rules))
	return nil
}
