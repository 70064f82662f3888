package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sandgren/gift-rates/internal/logger"
	"github.com/sandgren/gift-rates/internal/models"
	"github.com/sandgren/gift-rates/internal/ttl"
)

// DefaultDecimals is the number of fractional digits conversions and
// formatting use unless the caller asks for something else.
const DefaultDecimals = 2

// RateFetcher fetches the full rate table for a base currency from the
// external provider.
type RateFetcher interface {
	FetchRates(ctx context.Context, base string) (map[string]float64, error)
}

// RateStore persists one rate snapshot per base currency. Reads never fail:
// a broken cache behaves like an empty one. Write errors are reported so the
// caller can log them, but a conversion must still succeed with the
// in-memory rates.
type RateStore interface {
	ReadSnapshot(ctx context.Context, base string) (models.RateSnapshot, bool)
	WriteSnapshot(ctx context.Context, base string, snap models.RateSnapshot) error
	Clear(ctx context.Context) error
	Status(ctx context.Context, base string, ttlHours int) models.CacheStatus
}

// ConversionService converts amounts between currencies, serving rates from
// the cache while they are fresh and falling back to one provider call per
// conversion attempt otherwise.
type ConversionService struct {
	store          RateStore
	fetcher        RateFetcher
	configTTLHours int // per-user config value, zero when unset
}

// NewConversionService creates a service instance.
func NewConversionService(store RateStore, fetcher RateFetcher, configTTLHours int) *ConversionService {
	return &ConversionService{
		store:          store,
		fetcher:        fetcher,
		configTTLHours: configTTLHours,
	}
}

// Convert converts amount from one currency to another, rounding the result
// to the given number of decimals. Currency codes are expected uppercase;
// the engine does not re-validate them and lets the provider reject unknown
// codes. Failures are carried in the result, never returned as an error.
func (svc *ConversionService) Convert(ctx context.Context, amount float64, from, to string, decimals int) models.ConversionResult {
	if from == to {
		return models.ConversionResult{
			Success:         true,
			OriginalAmount:  amount,
			FromCurrency:    from,
			ToCurrency:      to,
			ConvertedAmount: amount,
			Rate:            1,
			Cached:          true,
		}
	}

	ttlHours := ttl.ResolveHours(svc.configTTLHours)

	var rate float64
	cached := false
	if snap, ok := svc.store.ReadSnapshot(ctx, from); ok {
		if time.Since(time.UnixMilli(snap.Timestamp)) < time.Duration(ttlHours)*time.Hour {
			if r, ok := snap.Rates[to]; ok {
				rate = r
				cached = true
			}
		}
	}

	if !cached {
		rates, err := svc.fetcher.FetchRates(ctx, from)
		if err != nil {
			logger.Log.Errorw("rate fetch failed", "from", from, "to", to, "error", err)
			return failedConversion(amount, from, to,
				fmt.Sprintf("Unable to get conversion rate from %s to %s: %v", from, to, err))
		}

		// A successful fetch is cached even when the target rate turns out
		// to be missing; a later conversion to another target may hit.
		snap := models.RateSnapshot{Rates: rates, Timestamp: time.Now().UnixMilli()}
		if err := svc.store.WriteSnapshot(ctx, from, snap); err != nil {
			logger.Log.Warnw("failed to persist rate snapshot", "base", from, "error", err)
		}

		r, ok := rates[to]
		if !ok {
			return failedConversion(amount, from, to,
				fmt.Sprintf("Unable to get conversion rate from %s to %s", from, to))
		}
		rate = r
	}

	return models.ConversionResult{
		Success:         true,
		OriginalAmount:  amount,
		FromCurrency:    from,
		ToCurrency:      to,
		ConvertedAmount: roundTo(amount*rate, decimals),
		Rate:            rate,
		Cached:          cached,
	}
}

// Refresh fetches the rate table for a base currency and replaces its
// snapshot regardless of freshness. A failed fetch leaves the prior snapshot
// intact; a failed cache write is logged and swallowed since the fetch
// itself succeeded.
func (svc *ConversionService) Refresh(ctx context.Context, base string) error {
	rates, err := svc.fetcher.FetchRates(ctx, base)
	if err != nil {
		return fmt.Errorf("refresh rates for %s: %w", base, err)
	}
	snap := models.RateSnapshot{Rates: rates, Timestamp: time.Now().UnixMilli()}
	if err := svc.store.WriteSnapshot(ctx, base, snap); err != nil {
		logger.Log.Warnw("failed to persist rate snapshot", "base", base, "error", err)
	}
	return nil
}

// Status reports the cache state for a base currency against the currently
// resolved TTL.
func (svc *ConversionService) Status(ctx context.Context, base string) models.CacheStatus {
	return svc.store.Status(ctx, base, ttl.ResolveHours(svc.configTTLHours))
}

// ClearCache deletes all cached snapshots.
func (svc *ConversionService) ClearCache(ctx context.Context) error {
	return svc.store.Clear(ctx)
}

func failedConversion(amount float64, from, to, msg string) models.ConversionResult {
	return models.ConversionResult{
		OriginalAmount: amount,
		FromCurrency:   from,
		ToCurrency:     to,
		Error:          msg,
	}
}

// roundTo rounds half away from zero to the given number of fractional
// digits.
func roundTo(v float64, decimals int) float64 {
	if decimals < 0 {
		decimals = 0
	}
	f := math.Pow10(decimals)
	return math.Round(v*f) / f
}
