// Package currencies holds the static registry of currency codes the tool
// advertises and the format-level validation for user-supplied codes.
package currencies

import "strings"

// supported is the advertised list, in display order. Validity of a code is
// a pure format check and does not require membership here; this list only
// drives what the tool shows as available.
var supported = []string{
	"USD",
	"EUR",
	"SEK",
	"NOK",
	"DKK",
	"GBP",
	"JPY",
	"CAD",
	"AUD",
	"CHF",
	"PLN",
	"CZK",
	"ISK",
	"NZD",
}

// Supported returns the advertised currency codes in a stable order.
func Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// Normalize trims surrounding whitespace and uppercases a code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValid reports whether the input is exactly three ASCII letters after
// normalization. It deliberately does not check membership in Supported:
// any well-formed ISO-4217-like code is accepted and left for the rate
// provider to recognize or reject.
func IsValid(code string) bool {
	c := Normalize(code)
	if len(c) != 3 {
		return false
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
