package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestHTTPMetrics_CountsRequests(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	handler := m.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tests", nil))
	}

	got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "418"))
	if got != 3 {
		t.Errorf("requests_total: got %v, want 3", got)
	}
}

func TestHTTPMetrics_DefaultStatusIs200(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	handler := m.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Handler writes nothing; the wrapper records an implicit 200.
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/signin", nil))

	got := testutil.ToFloat64(m.requests.WithLabelValues("POST", "200"))
	if got != 1 {
		t.Errorf("requests_total: got %v, want 1", got)
	}
}
