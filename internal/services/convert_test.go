package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandgren/gift-rates/internal/facades"
	"github.com/sandgren/gift-rates/internal/models"
	"github.com/sandgren/gift-rates/internal/repositories"
)

func TestConversionService_Convert_Identity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations: the identity path must perform zero I/O
	svc := NewConversionService(NewMockRateStore(ctrl), NewMockRateFetcher(ctrl), 0)

	res := svc.Convert(context.Background(), 123.45, "USD", "USD", DefaultDecimals)
	assert.True(t, res.Success)
	assert.Equal(t, 123.45, res.ConvertedAmount)
	assert.Equal(t, 123.45, res.OriginalAmount)
	assert.Equal(t, float64(1), res.Rate)
	assert.True(t, res.Cached)
	assert.Empty(t, res.Error)
}

func TestConversionService_Convert(t *testing.T) {
	ctx := context.Background()

	freshSnap := func(rates map[string]float64) models.RateSnapshot {
		return models.RateSnapshot{Rates: rates, Timestamp: time.Now().UnixMilli()}
	}
	staleSnap := func(rates map[string]float64) models.RateSnapshot {
		return models.RateSnapshot{Rates: rates, Timestamp: time.Now().Add(-25 * time.Hour).UnixMilli()}
	}

	tests := []struct {
		name      string
		mockSetup func(store *MockRateStore, fetcher *MockRateFetcher)
		wantRes   func(t *testing.T, res models.ConversionResult)
	}{
		{
			name: "fresh complete snapshot is a cache hit",
			mockSetup: func(store *MockRateStore, fetcher *MockRateFetcher) {
				store.EXPECT().
					ReadSnapshot(ctx, "USD").
					Return(freshSnap(map[string]float64{"EUR": 0.85}), true)
			},
			wantRes: func(t *testing.T, res models.ConversionResult) {
				assert.True(t, res.Success)
				assert.True(t, res.Cached)
				assert.Equal(t, 0.85, res.Rate)
				assert.Equal(t, 85.0, res.ConvertedAmount)
			},
		},
		{
			name: "stale snapshot falls through to the provider",
			mockSetup: func(store *MockRateStore, fetcher *MockRateFetcher) {
				store.EXPECT().
					ReadSnapshot(ctx, "USD").
					Return(staleSnap(map[string]float64{"EUR": 0.8}), true)
				fetcher.EXPECT().
					FetchRates(ctx, "USD").
					Return(map[string]float64{"EUR": 0.85}, nil)
				store.EXPECT().
					WriteSnapshot(ctx, "USD", gomock.Any()).
					Return(nil)
			},
			wantRes: func(t *testing.T, res models.ConversionResult) {
				assert.True(t, res.Success)
				assert.False(t, res.Cached)
				assert.Equal(t, 0.85, res.Rate)
			},
		},
		{
			name: "fresh snapshot missing the target falls through to the provider",
			mockSetup: func(store *MockRateStore, fetcher *MockRateFetcher) {
				store.EXPECT().
					ReadSnapshot(ctx, "USD").
					Return(freshSnap(map[string]float64{"SEK": 10.5}), true)
				fetcher.EXPECT().
					FetchRates(ctx, "USD").
					Return(map[string]float64{"EUR": 0.85, "SEK": 10.5}, nil)
				store.EXPECT().
					WriteSnapshot(ctx, "USD", gomock.Any()).
					Return(nil)
			},
			wantRes: func(t *testing.T, res models.ConversionResult) {
				assert.True(t, res.Success)
				assert.False(t, res.Cached)
				assert.Equal(t, 0.85, res.Rate)
			},
		},
		{
			name: "provider failure leaves the cache untouched",
			mockSetup: func(store *MockRateStore, fetcher *MockRateFetcher) {
				store.EXPECT().
					ReadSnapshot(ctx, "USD").
					Return(models.RateSnapshot{}, false)
				fetcher.EXPECT().
					FetchRates(ctx, "USD").
					Return(nil, errors.New("rate API returned status 404"))
			},
			wantRes: func(t *testing.T, res models.ConversionResult) {
				assert.False(t, res.Success)
				assert.Contains(t, res.Error, "Unable to get conversion rate from USD to EUR")
				assert.Contains(t, res.Error, "status 404")
				assert.Zero(t, res.ConvertedAmount)
			},
		},
		{
			name: "successful fetch missing the target still updates the cache",
			mockSetup: func(store *MockRateStore, fetcher *MockRateFetcher) {
				store.EXPECT().
					ReadSnapshot(ctx, "USD").
					Return(models.RateSnapshot{}, false)
				fetcher.EXPECT().
					FetchRates(ctx, "USD").
					Return(map[string]float64{"SEK": 10.5}, nil)
				store.EXPECT().
					WriteSnapshot(ctx, "USD", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, snap models.RateSnapshot) error {
						assert.Equal(t, map[string]float64{"SEK": 10.5}, snap.Rates)
						return nil
					})
			},
			wantRes: func(t *testing.T, res models.ConversionResult) {
				assert.False(t, res.Success)
				assert.Equal(t, "Unable to get conversion rate from USD to EUR", res.Error)
			},
		},
		{
			name: "cache write failure does not fail the conversion",
			mockSetup: func(store *MockRateStore, fetcher *MockRateFetcher) {
				store.EXPECT().
					ReadSnapshot(ctx, "USD").
					Return(models.RateSnapshot{}, false)
				fetcher.EXPECT().
					FetchRates(ctx, "USD").
					Return(map[string]float64{"EUR": 0.85}, nil)
				store.EXPECT().
					WriteSnapshot(ctx, "USD", gomock.Any()).
					Return(errors.New("write cache file: permission denied"))
			},
			wantRes: func(t *testing.T, res models.ConversionResult) {
				assert.True(t, res.Success)
				assert.Equal(t, 85.0, res.ConvertedAmount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockRateStore(ctrl)
			fetcher := NewMockRateFetcher(ctrl)
			tt.mockSetup(store, fetcher)

			svc := NewConversionService(store, fetcher, 0)
			tt.wantRes(t, svc.Convert(ctx, 100, "USD", "EUR", DefaultDecimals))
		})
	}
}

func TestConversionService_Convert_TTLOverride(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockRateStore(ctrl)
	fetcher := NewMockRateFetcher(ctrl)

	// a two hour old snapshot is stale once the override shrinks the TTL to one hour
	t.Setenv("CACHE_TTL_HOURS", "1")
	store.EXPECT().
		ReadSnapshot(ctx, "USD").
		Return(models.RateSnapshot{
			Rates:     map[string]float64{"EUR": 0.8},
			Timestamp: time.Now().Add(-2 * time.Hour).UnixMilli(),
		}, true)
	fetcher.EXPECT().
		FetchRates(ctx, "USD").
		Return(map[string]float64{"EUR": 0.85}, nil)
	store.EXPECT().
		WriteSnapshot(ctx, "USD", gomock.Any()).
		Return(nil)

	svc := NewConversionService(store, fetcher, 0)
	res := svc.Convert(ctx, 100, "USD", "EUR", DefaultDecimals)
	assert.True(t, res.Success)
	assert.False(t, res.Cached)
}

func TestConversionService_Convert_Rounding(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		amount   float64
		rate     float64
		decimals int
		want     float64
	}{
		{"two decimals", 100, 0.8567, 2, 85.67},
		{"half rounds away from zero", 1, 0.125, 2, 0.13},
		{"zero decimals", 100, 0.856, 0, 86},
		{"three decimals", 10, 0.33333, 3, 3.333},
		{"negative decimals treated as zero", 100, 0.856, -1, 86},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockRateStore(ctrl)
			fetcher := NewMockRateFetcher(ctrl)
			store.EXPECT().
				ReadSnapshot(ctx, "USD").
				Return(models.RateSnapshot{
					Rates:     map[string]float64{"EUR": tt.rate},
					Timestamp: time.Now().UnixMilli(),
				}, true)

			svc := NewConversionService(store, fetcher, 0)
			res := svc.Convert(ctx, tt.amount, "USD", "EUR", tt.decimals)
			require.True(t, res.Success)
			assert.Equal(t, tt.want, res.ConvertedAmount)
		})
	}
}

func TestConversionService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("success replaces the snapshot unconditionally", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := NewMockRateStore(ctrl)
		fetcher := NewMockRateFetcher(ctrl)

		// no ReadSnapshot expectation: freshness is ignored
		fetcher.EXPECT().
			FetchRates(ctx, "USD").
			Return(map[string]float64{"EUR": 0.85}, nil)
		store.EXPECT().
			WriteSnapshot(ctx, "USD", gomock.Any()).
			Return(nil)

		svc := NewConversionService(store, fetcher, 0)
		assert.NoError(t, svc.Refresh(ctx, "USD"))
	})

	t.Run("provider failure leaves the prior snapshot intact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := NewMockRateStore(ctrl)
		fetcher := NewMockRateFetcher(ctrl)

		fetcher.EXPECT().
			FetchRates(ctx, "USD").
			Return(nil, errors.New("rate request failed"))

		svc := NewConversionService(store, fetcher, 0)
		assert.Error(t, svc.Refresh(ctx, "USD"))
	})

	t.Run("cache write failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := NewMockRateStore(ctrl)
		fetcher := NewMockRateFetcher(ctrl)

		fetcher.EXPECT().
			FetchRates(ctx, "USD").
			Return(map[string]float64{"EUR": 0.85}, nil)
		store.EXPECT().
			WriteSnapshot(ctx, "USD", gomock.Any()).
			Return(errors.New("permission denied"))

		svc := NewConversionService(store, fetcher, 0)
		assert.NoError(t, svc.Refresh(ctx, "USD"))
	})
}

func TestConversionService_StatusAndClear(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockRateStore(ctrl)
	svc := NewConversionService(store, NewMockRateFetcher(ctrl), 48)

	age := 3
	store.EXPECT().
		Status(ctx, "USD", 48).
		Return(models.CacheStatus{Exists: true, AgeHours: &age, TTLHours: 48})

	st := svc.Status(ctx, "USD")
	assert.True(t, st.Exists)
	assert.Equal(t, 48, st.TTLHours)

	store.EXPECT().Clear(ctx).Return(nil)
	assert.NoError(t, svc.ClearCache(ctx))
}

// End-to-end against a real file store and a fake provider, covering the
// cache-reuse contract: one provider call serves repeated conversions within
// the TTL window.
func TestConversionService_EndToEnd(t *testing.T) {
	ctx := context.Background()

	t.Run("fetch once then serve from cache", func(t *testing.T) {
		var calls int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			_, _ = w.Write([]byte(`{"result":"success","rates":{"EUR":0.85}}`))
		}))
		defer srv.Close()

		store := repositories.NewFileStore(filepath.Join(t.TempDir(), "rates.json"))
		fetcher := facades.NewExchangeRateHTTPFacade(srv.URL, 5*time.Second)
		svc := NewConversionService(store, fetcher, 0)

		res := svc.Convert(ctx, 100, "USD", "EUR", DefaultDecimals)
		require.True(t, res.Success)
		assert.Equal(t, 85.0, res.ConvertedAmount)
		assert.Equal(t, 0.85, res.Rate)
		assert.False(t, res.Cached)

		again := svc.Convert(ctx, 100, "USD", "EUR", DefaultDecimals)
		require.True(t, again.Success)
		assert.True(t, again.Cached)
		assert.Equal(t, res.Rate, again.Rate)
		assert.Equal(t, res.ConvertedAmount, again.ConvertedAmount)

		assert.Equal(t, 1, calls, "provider called exactly once")
	})

	t.Run("http 404 leaves no cache file behind", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer srv.Close()

		path := filepath.Join(t.TempDir(), "rates.json")
		store := repositories.NewFileStore(path)
		fetcher := facades.NewExchangeRateHTTPFacade(srv.URL, 5*time.Second)
		svc := NewConversionService(store, fetcher, 0)

		res := svc.Convert(ctx, 100, "USD", "EUR", DefaultDecimals)
		assert.False(t, res.Success)
		assert.Contains(t, res.Error, "Unable to get conversion rate")

		st := store.Status(ctx, "USD", 24)
		assert.False(t, st.Exists)
	})
}
