package models

// FormatResponse carries a rendered human-readable amount
// swagger:model FormatResponse
type FormatResponse struct {
	// example: 100 USD (85 EUR)
	Formatted string `json:"formatted"`
}

// CurrenciesResponse lists the advertised currency codes
// swagger:model CurrenciesResponse
type CurrenciesResponse struct {
	// example: ["USD","EUR","SEK"]
	Currencies []string `json:"currencies"`
}

// ErrorResponse is the common error payload for the HTTP surface
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: invalid currency code
	Error string `json:"error"`
}
