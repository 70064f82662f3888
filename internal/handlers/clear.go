package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sandgren/gift-rates/internal/models"
)

// CacheClearer deletes all cached snapshots.
type CacheClearer interface {
	ClearCache(ctx context.Context) error
}

// NewClearHandler returns an HTTP handler wiping the rate cache.
// @Summary Clear cached rates
// @Description Deletes the whole rate cache; clearing an empty cache succeeds
// @Tags cache
// @Success 204 "Cache cleared"
// @Failure 500 {object} models.ErrorResponse "Cache could not be deleted"
// @Router /cache [delete]
func NewClearHandler(svc CacheClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.ClearCache(r.Context()); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: err.Error()})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// RegisterClearHandler registers the cache clear route.
func RegisterClearHandler(r chi.Router, h http.HandlerFunc) {
	r.Delete("/cache", h)
}
