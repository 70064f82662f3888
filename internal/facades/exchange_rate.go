package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sandgren/gift-rates/internal/logger"
)

// DefaultBaseURL is the keyless open endpoint of the exchange rate API.
// A request for a base currency returns the full rate table relative to it.
const DefaultBaseURL = "https://open.er-api.com/v6/latest"

// ExchangeRateHTTPFacade fetches full rate tables over HTTP. It performs
// exactly one request per call, no retries and no caching; all caching
// policy lives with the caller.
type ExchangeRateHTTPFacade struct {
	baseURL    string
	httpClient *http.Client
}

// NewExchangeRateHTTPFacade creates a facade for the given endpoint. An
// empty baseURL selects DefaultBaseURL; a zero timeout leaves the transport
// default in place.
func NewExchangeRateHTTPFacade(baseURL string, timeout time.Duration) *ExchangeRateHTTPFacade {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &ExchangeRateHTTPFacade{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ratesResponse is the provider's wire shape. Anything other than
// result=="success" is a logical failure even on HTTP 200.
type ratesResponse struct {
	Result    string             `json:"result"`
	Rates     map[string]float64 `json:"rates"`
	ErrorType string             `json:"error-type,omitempty"`
}

// FetchRates requests all rates relative to the base currency. The error
// message distinguishes transport, HTTP status, body-parse, and
// provider-reported failures; callers only propagate the message.
func (f *ExchangeRateHTTPFacade) FetchRates(ctx context.Context, base string) (map[string]float64, error) {
	url := fmt.Sprintf("%s/%s", f.baseURL, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build rate request: %w", err)
	}

	logger.Log.Debugw("fetching exchange rates", "base", base, "url", url)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("rate API returned status %d", resp.StatusCode)
	}

	var apiResp ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("invalid rate API response: %v", err)
	}

	if apiResp.Result != "success" {
		if apiResp.ErrorType != "" {
			return nil, fmt.Errorf("rate API returned result=%q (%s)", apiResp.Result, apiResp.ErrorType)
		}
		return nil, fmt.Errorf("rate API returned result=%q", apiResp.Result)
	}

	logger.Log.Debugw("exchange rates fetched", "base", base, "count", len(apiResp.Rates))
	return apiResp.Rates, nil
}
