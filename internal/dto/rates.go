package dto

import (
	"time"

	"github.com/cambiohoje/cambio_dashboard_app/internal/core/domain"
	"github.com/cambiohoje/cambio_dashboard_app/internal/utils"
)

// CurrencyRateResponse defines the data returned for one currency record.
type CurrencyRateResponse struct {
	Code    string  `json:"code"`
	Symbol  string  `json:"symbol"`
	Rate    float64 `json:"rate"`
	Change  float64 `json:"change"`
	Display string  `json:"display"` // Rate formatted in home currency, e.g. "R$ 5.12"
}

// RatesStateResponse defines the fetch-lifecycle state returned to the UI.
type RatesStateResponse struct {
	Rates      []CurrencyRateResponse `json:"rates"`
	Loading    bool                   `json:"loading"`
	Error      *string                `json:"error,omitempty"`
	LastUpdate *time.Time             `json:"lastUpdate,omitempty"`
}

// ToCurrencyRateResponse converts a domain.CurrencyRecord to its DTO.
func ToCurrencyRateResponse(rec domain.CurrencyRecord) CurrencyRateResponse {
	return CurrencyRateResponse{
		Code:    rec.Code,
		Symbol:  rec.Symbol,
		Rate:    rec.Rate,
		Change:  rec.Change,
		Display: utils.FormatHomeAmount(rec.Rate),
	}
}

// ToRatesStateResponse converts a domain.RatesState to its DTO.
func ToRatesStateResponse(state domain.RatesState) RatesStateResponse {
	resp := RatesStateResponse{
		Loading:    state.Loading,
		LastUpdate: state.LastUpdate,
	}
	if state.ErrMsg != "" {
		errMsg := state.ErrMsg
		resp.Error = &errMsg
	}
	if state.Current != nil {
		resp.Rates = make([]CurrencyRateResponse, len(state.Current.Records))
		for i, rec := range state.Current.Records {
			resp.Rates[i] = ToCurrencyRateResponse(rec)
		}
	} else {
		resp.Rates = []CurrencyRateResponse{}
	}
	return resp
}
