package dto

import (
	"time"

	"github.com/cambiohoje/cambio_dashboard_app/internal/core/domain"
)

// CreateAlertRequest defines the data needed to register an alert rule.
// TargetRate is required to be present; numeric range, sign and currency
// membership are deliberately not validated.
type CreateAlertRequest struct {
	Currency   string   `json:"currency" binding:"required"`
	TargetRate *float64 `json:"targetRate" binding:"required"`
	Direction  string   `json:"direction" binding:"required,oneof=above below"`
}

// AlertResponse defines the data returned for an alert rule. Index is the
// rule's positional identity, used for deletion.
type AlertResponse struct {
	Index      int       `json:"index"`
	Currency   string    `json:"currency"`
	TargetRate float64   `json:"targetRate"`
	Direction  string    `json:"direction"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToAlertResponse converts a domain.AlertRule to its DTO.
func ToAlertResponse(rule domain.AlertRule, index int) AlertResponse {
	return AlertResponse{
		Index:      index,
		Currency:   rule.Currency,
		TargetRate: rule.TargetRate,
		Direction:  string(rule.Direction),
		CreatedAt:  rule.CreatedAt,
	}
}

// ToAlertListResponse converts a slice of rules, assigning positional indexes.
func ToAlertListResponse(rules []domain.AlertRule) []AlertResponse {
	res := make([]AlertResponse, len(rules))
	for i, rule := range rules {
		res[i] = ToAlertResponse(rule, i)
	}
	return res
}
