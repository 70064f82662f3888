package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandgren/gift-rates/internal/handlers"
	"github.com/sandgren/gift-rates/internal/models"
)

func TestConvertHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConverter := handlers.NewMockConverter(ctrl)
	handler := handlers.NewConvertHandler(mockConverter)

	tests := []struct {
		name      string
		target    string
		mockSetup func()
		wantCode  int
		check     func(t *testing.T, body []byte)
	}{
		{
			name:   "success",
			target: "/convert?amount=100&from=usd&to=eur",
			mockSetup: func() {
				mockConverter.EXPECT().
					Convert(gomock.Any(), 100.0, "USD", "EUR", 2).
					Return(models.ConversionResult{
						Success:         true,
						OriginalAmount:  100,
						FromCurrency:    "USD",
						ToCurrency:      "EUR",
						ConvertedAmount: 85,
						Rate:            0.85,
					})
			},
			wantCode: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var res models.ConversionResult
				require.NoError(t, json.Unmarshal(body, &res))
				assert.True(t, res.Success)
				assert.Equal(t, 85.0, res.ConvertedAmount)
			},
		},
		{
			name:   "explicit decimals",
			target: "/convert?amount=100&from=USD&to=EUR&decimals=3",
			mockSetup: func() {
				mockConverter.EXPECT().
					Convert(gomock.Any(), 100.0, "USD", "EUR", 3).
					Return(models.ConversionResult{Success: true})
			},
			wantCode: http.StatusOK,
			check:    func(t *testing.T, body []byte) {},
		},
		{
			name:      "missing amount",
			target:    "/convert?from=USD&to=EUR",
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				var res models.ErrorResponse
				require.NoError(t, json.Unmarshal(body, &res))
				assert.Equal(t, "invalid amount", res.Error)
			},
		},
		{
			name:      "invalid currency code",
			target:    "/convert?amount=100&from=US1&to=EUR",
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				var res models.ErrorResponse
				require.NoError(t, json.Unmarshal(body, &res))
				assert.Equal(t, "invalid currency code", res.Error)
			},
		},
		{
			name:      "invalid decimals",
			target:    "/convert?amount=100&from=USD&to=EUR&decimals=two",
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
			check:     func(t *testing.T, body []byte) {},
		},
		{
			name:   "conversion failure maps to bad gateway",
			target: "/convert?amount=100&from=USD&to=EUR",
			mockSetup: func() {
				mockConverter.EXPECT().
					Convert(gomock.Any(), 100.0, "USD", "EUR", 2).
					Return(models.ConversionResult{
						Success:        false,
						OriginalAmount: 100,
						FromCurrency:   "USD",
						ToCurrency:     "EUR",
						Error:          "Unable to get conversion rate from USD to EUR",
					})
			},
			wantCode: http.StatusBadGateway,
			check: func(t *testing.T, body []byte) {
				var res models.ConversionResult
				require.NoError(t, json.Unmarshal(body, &res))
				assert.False(t, res.Success)
				assert.Contains(t, res.Error, "Unable to get conversion rate")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)
			tt.check(t, rr.Body.Bytes())
		})
	}
}
