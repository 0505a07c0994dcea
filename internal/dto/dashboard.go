package dto

import (
	"github.com/cambiohoje/cambio_dashboard_app/internal/core/domain"
)

// SelectCurrencyRequest defines the select-currency intent payload.
type SelectCurrencyRequest struct {
	Code string `json:"code" binding:"required"`
}

// SelectRangeRequest defines the select-range intent payload.
type SelectRangeRequest struct {
	Range string `json:"range" binding:"required"`
}

// DashboardStateResponse defines the full view-state returned to the UI.
type DashboardStateResponse struct {
	Rates            RatesStateResponse     `json:"rates"`
	SelectedCurrency string                 `json:"selectedCurrency"`
	SelectedRange    string                 `json:"selectedRange"`
	History          []HistoryPointResponse `json:"history"`
	ConversionResult string                 `json:"conversionResult"`
	Alerts           []AlertResponse        `json:"alerts"`
}

// ToDashboardStateResponse converts a domain.DashboardState to its DTO.
func ToDashboardStateResponse(state domain.DashboardState) DashboardStateResponse {
	return DashboardStateResponse{
		Rates:            ToRatesStateResponse(state.Rates),
		SelectedCurrency: state.SelectedCurrency,
		SelectedRange:    string(state.SelectedRange),
		History:          ToHistoryPointResponses(state.History),
		ConversionResult: state.ConversionResult,
		Alerts:           ToAlertListResponse(state.Alerts),
	}
}
