package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sandgren/gift-rates/internal/currencies"
	"github.com/sandgren/gift-rates/internal/models"
)

// NewCurrenciesHandler returns an HTTP handler listing advertised currencies.
// @Summary List supported currencies
// @Description Returns the advertised currency codes in display order
// @Tags conversion
// @Produce json
// @Success 200 {object} models.CurrenciesResponse
// @Router /currencies [get]
func NewCurrenciesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.CurrenciesResponse{Currencies: currencies.Supported()})
	}
}

// RegisterCurrenciesHandler registers the currency list route.
func RegisterCurrenciesHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/currencies", h)
}
