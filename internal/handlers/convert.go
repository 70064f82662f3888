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

// Converter converts an amount between two currencies.
type Converter interface {
	Convert(ctx context.Context, amount float64, from, to string, decimals int) models.ConversionResult
}

// NewConvertHandler returns an HTTP handler performing a single conversion.
// @Summary Convert an amount between currencies
// @Description Converts an amount from a base currency to a display currency, serving the rate from the cache while fresh
// @Tags conversion
// @Produce json
// @Param amount query number true "Amount to convert"
// @Param from query string true "Base currency code"
// @Param to query string true "Display currency code"
// @Param decimals query int false "Fractional digits in the result (default 2)"
// @Success 200 {object} models.ConversionResult
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 502 {object} models.ConversionResult "Rate could not be obtained"
// @Router /convert [get]
func NewConvertHandler(svc Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		amount, err := strconv.ParseFloat(r.URL.Query().Get("amount"), 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "invalid amount"})
			return
		}

		from := currencies.Normalize(r.URL.Query().Get("from"))
		to := currencies.Normalize(r.URL.Query().Get("to"))
		if !currencies.IsValid(from) || !currencies.IsValid(to) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "invalid currency code"})
			return
		}

		decimals := services.DefaultDecimals
		if raw := r.URL.Query().Get("decimals"); raw != "" {
			if decimals, err = strconv.Atoi(raw); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "invalid decimals"})
				return
			}
		}

		res := svc.Convert(r.Context(), amount, from, to, decimals)
		if !res.Success {
			w.WriteHeader(http.StatusBadGateway)
		}
		_ = json.NewEncoder(w).Encode(res)
	}
}

// RegisterConvertHandler registers the conversion route.
func RegisterConvertHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/convert", h)
}
