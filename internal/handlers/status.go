package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sandgren/gift-rates/internal/currencies"
	"github.com/sandgren/gift-rates/internal/models"
)

// CacheInspector reports the cache state for a base currency.
type CacheInspector interface {
	Status(ctx context.Context, base string) models.CacheStatus
}

// NewStatusHandler returns an HTTP handler inspecting the rate cache.
// @Summary Inspect cached rates
// @Description Reports existence, age, and expiry of the cached snapshot for a base currency; corruption is reported in the error field without failing the request
// @Tags cache
// @Produce json
// @Param base query string true "Base currency code"
// @Success 200 {object} models.CacheStatus
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Router /cache/status [get]
func NewStatusHandler(svc CacheInspector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		base := currencies.Normalize(r.URL.Query().Get("base"))
		if !currencies.IsValid(base) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "invalid currency code"})
			return
		}

		_ = json.NewEncoder(w).Encode(svc.Status(r.Context(), base))
	}
}

// RegisterStatusHandler registers the cache status route.
func RegisterStatusHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/cache/status", h)
}
