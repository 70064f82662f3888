package services

import (
	"context"
	"fmt"
	"math"
)

// FormatSingle renders an amount with its currency code. At the default
// precision an amount that rounds to a whole number is rendered bare
// ("100 USD") while a fractional one keeps exactly two digits ("100.50 USD");
// any non-default precision always renders the full digit count, whole
// number or not ("100.000 USD" for decimals=3). The asymmetry is part of the
// observable contract and kept as is.
func FormatSingle(amount float64, currency string, decimals int) string {
	if decimals == DefaultDecimals {
		rounded := roundTo(amount, DefaultDecimals)
		if rounded == math.Trunc(rounded) {
			return fmt.Sprintf("%.0f %s", rounded, currency)
		}
		return fmt.Sprintf("%.2f %s", rounded, currency)
	}
	return fmt.Sprintf("%.*f %s", decimals, amount, currency)
}

// FormatOutput renders an amount in its base currency, adding the display
// currency in parentheses when one is requested and differs from the base.
// A conversion that cannot obtain a rate degrades to
// "(conversion unavailable)" instead of failing. A non-empty recipient adds
// a " for <name>" suffix to every form.
func (svc *ConversionService) FormatOutput(ctx context.Context, amount float64, base, display, recipient string, decimals int) string {
	var out string
	switch {
	case display == "" || display == base:
		out = FormatSingle(amount, base, decimals)
	default:
		res := svc.Convert(ctx, amount, base, display, decimals)
		if res.Success {
			out = fmt.Sprintf("%s (%s)",
				FormatSingle(amount, base, decimals),
				FormatSingle(res.ConvertedAmount, display, decimals))
		} else {
			out = fmt.Sprintf("%s (conversion unavailable)", FormatSingle(amount, base, decimals))
		}
	}
	if recipient != "" {
		out += " for " + recipient
	}
	return out
}
