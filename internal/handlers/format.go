package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sandgren/gift-rates/internal/currencies"
	"github.com/sandgren/gift-rates/internal/models"
	"github.com/sandgren/gift-rates/internal/services"
)

// Formatter renders an amount for display, optionally in a second currency
// and with a recipient suffix.
type Formatter interface {
	FormatOutput(ctx context.Context, amount float64, base, display, recipient string, decimals int) string
}

// NewFormatHandler returns an HTTP handler rendering an amount for display.
// @Summary Format an amount for display
// @Description Renders an amount in its base currency, adding the display currency in parentheses when requested; a failed conversion degrades to "(conversion unavailable)"
// @Tags conversion
// @Produce json
// @Param amount query number true "Amount to render"
// @Param currency query string true "Base currency code"
// @Param display query string false "Display currency code"
// @Param recipient query string false "Recipient name appended as a suffix"
// @Param decimals query int false "Fractional digits (default 2)"
// @Success 200 {object} models.FormatResponse
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Router /format [get]
func NewFormatHandler(svc Formatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		amount, err := strconv.ParseFloat(r.URL.Query().Get("amount"), 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "invalid amount"})
			return
		}

		base := currencies.Normalize(r.URL.Query().Get("currency"))
		if !currencies.IsValid(base) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "invalid currency code"})
			return
		}

		display := ""
		if raw := r.URL.Query().Get("display"); raw != "" {
			display = currencies.Normalize(raw)
			if !currencies.IsValid(display) {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "invalid display currency code"})
				return
			}
		}

		decimals := services.DefaultDecimals
		if raw := r.URL.Query().Get("decimals"); raw != "" {
			if decimals, err = strconv.Atoi(raw); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "invalid decimals"})
				return
			}
		}

		formatted := svc.FormatOutput(r.Context(), amount, base, display, r.URL.Query().Get("recipient"), decimals)
		_ = json.NewEncoder(w).Encode(models.FormatResponse{Formatted: formatted})
	}
}

// RegisterFormatHandler registers the formatting route.
func RegisterFormatHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/format", h)
}
