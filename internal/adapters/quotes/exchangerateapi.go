package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cambiohoje/cambio_dashboard_app/internal/apperrors"
	"github.com/cambiohoje/cambio_dashboard_app/internal/core/domain"
	"github.com/cambiohoje/cambio_dashboard_app/internal/core/ports/providers"
)

// latestRatesResponse is the ExchangeRate-API v6 "latest" payload. The
// conversion_rates values quote foreign units per 1 home unit.
type latestRatesResponse struct {
	Result             string             `json:"result"`
	BaseCode           string             `json:"base_code"`
	ConversionRates    map[string]float64 `json:"conversion_rates"`
	TimeLastUpdateUnix int64              `json:"time_last_update_unix"`
}

// ExchangeRateAPIClient implements the QuoteSource port against the
// ExchangeRate-API v6 latest-rates endpoint.
type ExchangeRateAPIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Ensure the client satisfies the port
var _ providers.QuoteSource = (*ExchangeRateAPIClient)(nil)

// NewExchangeRateAPIClient creates a new quote source client. A nil
// httpClient falls back to a 10 second timeout default.
func NewExchangeRateAPIClient(baseURL, apiKey string, httpClient *http.Client) *ExchangeRateAPIClient {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 10 * time.Second,
		}
	}

	return &ExchangeRateAPIClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// FetchSnapshot issues one GET to <base_url>/<api_key>/latest/<home> and
// normalizes the payload into a Snapshot. Failures are classified into the
// apperrors fetch taxonomy; there is no retry here, the scheduler cadence
// and manual refresh are the only retry paths.
func (c *ExchangeRateAPIClient) FetchSnapshot(ctx context.Context) (domain.Snapshot, error) {
	if c.apiKey == "" || c.baseURL == "" {
		return domain.Snapshot{}, fmt.Errorf("%w: API key or base URL missing", apperrors.ErrConfiguration)
	}

	reqURL := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, domain.HomeCurrencyCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: failed to create request: %v", apperrors.ErrTransport, err)
	}
	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %v", apperrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Snapshot{}, fmt.Errorf("%w: unexpected status %d", apperrors.ErrUpstreamRejected, resp.StatusCode)
	}

	var body latestRatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: failed to decode response: %v", apperrors.ErrUpstreamRejected, err)
	}

	if body.Result != "success" {
		return domain.Snapshot{}, fmt.Errorf("%w: result %q", apperrors.ErrUpstreamRejected, body.Result)
	}

	return normalizeSnapshot(body)
}

// normalizeSnapshot inverts the wire rates into display records: the wire
// quotes foreign-per-home, the dashboard shows home-per-foreign, so
// rate = 1 / wire. The home currency is pinned to 1.0 by definition, never
// derived by inversion.
func normalizeSnapshot(body latestRatesResponse) (domain.Snapshot, error) {
	records := make([]domain.CurrencyRecord, 0, len(domain.SupportedCurrencyCodes))
	for _, code := range domain.SupportedCurrencyCodes {
		if code == domain.HomeCurrencyCode {
			records = append(records, domain.CurrencyRecord{
				Code:   code,
				Symbol: domain.CurrencySymbols[code],
				Rate:   1.0,
				Change: 0,
			})
			continue
		}

		wireRate, ok := body.ConversionRates[code]
		if !ok || wireRate <= 0 {
			return domain.Snapshot{}, fmt.Errorf("%w: missing or non-positive rate for %s", apperrors.ErrUpstreamRejected, code)
		}

		records = append(records, domain.CurrencyRecord{
			Code:   code,
			Symbol: domain.CurrencySymbols[code],
			Rate:   1 / wireRate,
			// Change needs a previous observation to diff against; none is
			// kept, so it stays zero.
			Change: 0,
		})
	}

	return domain.Snapshot{
		Records:    records,
		ObservedAt: time.Unix(body.TimeLastUpdateUnix, 0).UTC(),
	}, nil
}
