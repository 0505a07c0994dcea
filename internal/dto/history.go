package dto

import (
	"github.com/cambiohoje/cambio_dashboard_app/internal/core/domain"
)

// HistoryParams defines the query parameters for a stateless history read.
type HistoryParams struct {
	Currency string `form:"currency" binding:"required"`
	Range    string `form:"range" binding:"required"`
}

// HistoryPointResponse defines one charted bucket returned to the UI.
type HistoryPointResponse struct {
	Label string  `json:"label"`
	Rate  float64 `json:"rate"`
}

// HistoryResponse defines a full synthesized series for a (currency, range).
type HistoryResponse struct {
	Currency string                 `json:"currency"`
	Range    string                 `json:"range"`
	Points   []HistoryPointResponse `json:"points"`
}

// ToHistoryPointResponses converts domain history points to DTOs.
func ToHistoryPointResponses(points []domain.HistoryPoint) []HistoryPointResponse {
	res := make([]HistoryPointResponse, len(points))
	for i, p := range points {
		res[i] = HistoryPointResponse{Label: p.Label, Rate: p.Rate}
	}
	return res
}
