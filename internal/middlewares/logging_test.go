package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantBody   string
	}{
		{
			name: "ok with body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("converted"))
			},
			wantStatus: http.StatusOK,
			wantBody:   "converted",
		},
		{
			name: "explicit status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   "",
		},
	}

	mw := LoggingMiddleware(zap.NewNop().Sugar())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotReqID interface{}
			inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotReqID = r.Context().Value(RequestIDKey)
				tt.handler(w, r)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/convert", nil)
			rr := httptest.NewRecorder()
			mw(inner).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, rr.Body.String())

			headerID := rr.Header().Get("X-Request-ID")
			require.NotEmpty(t, headerID)
			_, err := uuid.Parse(headerID)
			assert.NoError(t, err)
			assert.Equal(t, headerID, gotReqID)
		})
	}
}

func TestResponseWriterAccumulatesSize(t *testing.T) {
	rr := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rr, statusCode: http.StatusOK}

	_, err := rw.Write([]byte("100 USD"))
	require.NoError(t, err)
	_, err = rw.Write([]byte(" (85 EUR)"))
	require.NoError(t, err)

	assert.Equal(t, len("100 USD (85 EUR)"), rw.size)
	assert.Equal(t, http.StatusOK, rw.statusCode)
}
