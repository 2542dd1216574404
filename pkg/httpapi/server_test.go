package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cuemby/ledgerd/pkg/metrics"
)

func TestServerLivezAlwaysOK(t *testing.T) {
	s := New(":0")
	req := httptest.NewRequest(http.MethodGet, "/livez", nil)
	w := httptest.NewRecorder()

	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET /livez status = %d, want 200", w.Code)
	}
}

func TestServerReadyzReflectsComponents(t *testing.T) {
	metrics.Configure(nil, nil)

	s := New(":0")
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()

	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("GET /readyz status = %d, want 503 with no components configured", w.Code)
	}
}

func TestServerMetricsEndpointServesPrometheusFormat(t *testing.T) {
	s := New(":0")
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET /metrics status = %d, want 200", w.Code)
	}
	if w.Body.Len() == 0 {
		t.Error("GET /metrics returned an empty body")
	}
}
