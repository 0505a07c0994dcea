package domain

// HomeCurrencyCode is the currency every displayed rate is expressed against.
// It is fixed, not user-configurable.
const HomeCurrencyCode = "BRL"

// SupportedCurrencyCodes is the fixed, ordered set of currencies the dashboard
// tracks. Snapshots always contain exactly one record per entry, in this order.
// Adding a currency requires extending both this list and CurrencySymbols.
var SupportedCurrencyCodes = []string{"USD", "EUR", "GBP", "BRL"}

// CurrencySymbols maps a currency code to its display symbol.
var CurrencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"BRL": "R$",
}

// CurrencyRecord is one normalized rate entry within a Snapshot.
type CurrencyRecord struct {
	Code   string  `json:"code"`   // ISO-4217 style code (e.g., "USD")
	Symbol string  `json:"symbol"` // e.g., "$"
	Rate   float64 `json:"rate"`   // Home-currency units per 1 unit of Code; 1.0 for the home currency
	Change float64 `json:"change"` // Percent change; always 0, there is no historical baseline to diff against
}

// IsSupportedCurrency reports whether code is part of the fixed currency set.
func IsSupportedCurrency(code string) bool {
	_, ok := CurrencySymbols[code]
	return ok
}
