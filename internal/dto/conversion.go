package dto

// ConvertRequest defines the data needed to compute a conversion.
// Amount carries the raw form value from the UI on purpose: an absent or
// non-numeric amount is a valid input that displays as "0.00", not a
// validation failure.
type ConvertRequest struct {
	Amount string `json:"amount"`
	From   string `json:"from" binding:"required"`
	To     string `json:"to" binding:"required"`
}

// ConvertResponse defines the computed conversion display value.
type ConvertResponse struct {
	Amount string `json:"amount"`
	From   string `json:"from"`
	To     string `json:"to"`
	Result string `json:"result"` // Two-decimal display string, e.g. "50.00"
}
