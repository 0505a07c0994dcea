package domain

import "time"

// RatesState is the fetch-lifecycle state the scheduler maintains. Current
// and LastUpdate survive failed fetches (stale-but-available); ErrMsg is
// empty after a success.
type RatesState struct {
	Current    *Snapshot  `json:"current"`
	Loading    bool       `json:"loading"`
	ErrMsg     string     `json:"errMsg"`
	LastUpdate *time.Time `json:"lastUpdate"`
}

// DashboardState is the full view-state the dashboard produces for the
// presentation layer: rates plus UI selections, the active synthesized
// history, the last conversion display value, and the alert list.
type DashboardState struct {
	Rates            RatesState     `json:"rates"`
	SelectedCurrency string         `json:"selectedCurrency"`
	SelectedRange    HistoryRange   `json:"selectedRange"`
	History          []HistoryPoint `json:"history"`
	ConversionResult string         `json:"conversionResult"`
	Alerts           []AlertRule    `json:"alerts"`
}
