package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopapi/catalog/pkg/health"
)

func TestRouter_HealthEndpoints(t *testing.T) {
	hh := health.NewHandler()
	hh.RegisterCritical("postgres", func(context.Context) error { return nil })
	router := NewRouter(testService(&memStore{}), hh, testLogger(), RouterConfig{})

	for _, path := range []string{"/health/live", "/health/ready"} {
		rec := do(t, router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRouter_MetricsExposeHTTPRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	router := NewRouter(testService(&memStore{}), health.NewHandler(), testLogger(), RouterConfig{Registry: reg})

	do(t, router, http.MethodGet, "/products", "")
	rec := do(t, router, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total`)
	assert.Contains(t, rec.Body.String(), `path="/products`)
}

func TestRouter_CorrelationIDEchoed(t *testing.T) {
	router := newTestRouter(&memStore{})

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("X-Correlation-ID", "corr-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "corr-123", rec.Header().Get("X-Correlation-ID"))
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newTestRouter(&memStore{})

	req := httptest.NewRequest(http.MethodOptions, "/products", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_PprofDeniedOutsideAllowlist(t *testing.T) {
	router := NewRouter(testService(&memStore{}), health.NewHandler(), testLogger(), RouterConfig{
		PprofAllowedCIDRs: []string{"10.0.0.0/8"},
	})

	req := httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil)
	req.RemoteAddr = "203.0.113.7:5555"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
