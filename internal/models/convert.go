package models

// ConversionResult is the outcome of a single conversion attempt. Business
// failures (unreachable rate, provider error) are carried in Success and
// Error rather than as a Go error; the result is created fresh per call and
// never persisted.
// swagger:model ConversionResult
type ConversionResult struct {
	// Whether a rate was obtained and the conversion computed
	// example: true
	Success bool `json:"success"`

	// The amount the caller asked to convert
	// example: 100.0
	OriginalAmount float64 `json:"original_amount"`

	// Base currency of the amount
	// example: USD
	FromCurrency string `json:"from_currency"`

	// Display currency the amount was converted into
	// example: EUR
	ToCurrency string `json:"to_currency"`

	// Converted amount, rounded to the requested number of decimals
	// example: 85.0
	ConvertedAmount float64 `json:"converted_amount,omitempty"`

	// Exchange rate that was applied
	// example: 0.85
	Rate float64 `json:"rate,omitempty"`

	// Whether the rate came from a fresh cached snapshot
	// example: false
	Cached bool `json:"cached"`

	// Human-readable failure message when Success is false
	// example: Unable to get conversion rate from USD to EUR
	Error string `json:"error,omitempty"`
}
