package models

// CacheStatus describes the state of the cached snapshot for one base
// currency without modifying it.
// swagger:model CacheStatus
type CacheStatus struct {
	// Whether a snapshot exists for the base currency
	// example: true
	Exists bool `json:"exists"`

	// Whether the snapshot is older than the resolved TTL
	// example: false
	Expired bool `json:"expired"`

	// Whole hours elapsed since the snapshot was fetched; null when no
	// snapshot exists
	// example: 3
	AgeHours *int `json:"age_hours"`

	// The TTL the status was evaluated against
	// example: 24
	TTLHours int `json:"ttl_hours"`

	// Fetch time of the snapshot in RFC3339 form; empty when no snapshot
	// exists
	// example: 2026-08-29T10:00:00Z
	Timestamp string `json:"timestamp,omitempty"`

	// Populated when the cache file is present but unreadable or corrupted
	Error string `json:"error,omitempty"`
}

// RefreshResponse reports the outcome of a forced rate refresh
// swagger:model RefreshResponse
type RefreshResponse struct {
	// example: true
	Success bool `json:"success"`

	// Base currency whose snapshot was refreshed
	// example: USD
	BaseCurrency string `json:"base_currency"`
}
