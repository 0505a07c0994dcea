package utils

import (
	"math"

	"github.com/cambiohoje/cambio_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatDisplayAmount renders an amount with exactly two decimals for display.
// Example: 12.3456 returns "12.35"; NaN and infinities return "0.00".
func FormatDisplayAmount(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "0.00"
	}
	return decimal.NewFromFloat(amount).StringFixed(2)
}

// FormatHomeAmount renders an amount prefixed with the home currency symbol.
// Example: 5.1234 returns "R$ 5.12".
func FormatHomeAmount(amount float64) string {
	return domain.CurrencySymbols[domain.HomeCurrencyCode] + " " + FormatDisplayAmount(amount)
}
