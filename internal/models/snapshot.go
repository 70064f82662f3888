package models

// RateSnapshot is one provider response for a base currency: the complete
// rate table plus the fetch time in milliseconds since the epoch. A snapshot
// is replaced wholesale on refetch, never merged entry by entry.
type RateSnapshot struct {
	Rates     map[string]float64 `json:"rates"`
	Timestamp int64              `json:"timestamp"`
}

// CacheFile is the on-disk shape of the rate cache: one snapshot per base
// currency ever queried.
type CacheFile map[string]RateSnapshot
