package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/justinas/alice"
	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/sales-analytics/pkg/log"
)

func TestLoggingMiddleware_SetsCorrelationID(t *testing.T) {
	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analyses?limit=2", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(CorrelationIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := alice.New(LogPanicMiddleware(), LoggingMiddleware()).ThenFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analyses", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		allowed        []string
		method         string
		origin         string
		expectedStatus int
		expectedOrigin string
	}{
		{name: "Origem permitida", allowed: []string{"http://localhost:3000"}, method: http.MethodGet, origin: "http://localhost:3000", expectedStatus: http.StatusOK, expectedOrigin: "http://localhost:3000"},
		{name: "Origem não permitida", allowed: []string{"http://localhost:3000"}, method: http.MethodGet, origin: "http://evil.test", expectedStatus: http.StatusOK},
		{name: "Curinga", allowed: []string{"*"}, method: http.MethodGet, origin: "http://qualquer.test", expectedStatus: http.StatusOK, expectedOrigin: "http://qualquer.test"},
		{name: "Preflight", allowed: []string{"*"}, method: http.MethodOptions, origin: "http://qualquer.test", expectedStatus: http.StatusNoContent, expectedOrigin: "http://qualquer.test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/analyses", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
