package domain_test

import (
	"testing"

	"github.com/cambiohoje/cambio_dashboard_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestSnapshot_RateFor(t *testing.T) {
	snapshot := &domain.Snapshot{
		Records: []domain.CurrencyRecord{
			{Code: "USD", Rate: 5.0},
			{Code: "BRL", Rate: 1.0},
		},
	}

	tests := []struct {
		name     string
		snapshot *domain.Snapshot
		code     string
		wantRate float64
		wantOK   bool
	}{
		{name: "known code", snapshot: snapshot, code: "USD", wantRate: 5.0, wantOK: true},
		{name: "home currency", snapshot: snapshot, code: "BRL", wantRate: 1.0, wantOK: true},
		{name: "unknown code", snapshot: snapshot, code: "JPY", wantOK: false},
		{name: "nil snapshot", snapshot: nil, code: "USD", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, ok := tt.snapshot.RateFor(tt.code)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantRate, rate)
			}
		})
	}
}

func TestIsSupportedCurrency(t *testing.T) {
	for _, code := range domain.SupportedCurrencyCodes {
		assert.True(t, domain.IsSupportedCurrency(code), code)
	}
	assert.False(t, domain.IsSupportedCurrency("JPY"))
	assert.False(t, domain.IsSupportedCurrency("usd"))
}
