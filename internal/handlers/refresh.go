package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sandgren/gift-rates/internal/currencies"
	"github.com/sandgren/gift-rates/internal/models"
)

// Refresher unconditionally refetches and re-caches the rate table for a
// base currency.
type Refresher interface {
	Refresh(ctx context.Context, base string) error
}

// NewRefreshHandler returns an HTTP handler forcing a rate refresh.
// @Summary Refresh cached rates
// @Description Fetches the full rate table for a base currency and replaces its snapshot regardless of freshness
// @Tags cache
// @Produce json
// @Param base query string true "Base currency code"
// @Success 200 {object} models.RefreshResponse
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 502 {object} models.ErrorResponse "Provider call failed"
// @Router /cache/refresh [post]
func NewRefreshHandler(svc Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		base := currencies.Normalize(r.URL.Query().Get("base"))
		if !currencies.IsValid(base) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "invalid currency code"})
			return
		}

		if err := svc.Refresh(r.Context(), base); err != nil {
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: err.Error()})
			return
		}
		_ = json.NewEncoder(w).Encode(models.RefreshResponse{Success: true, BaseCurrency: base})
	}
}

// RegisterRefreshHandler registers the refresh route.
func RegisterRefreshHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/cache/refresh", h)
}
