package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_RecordersAndHandler(t *testing.T) {
	t.Parallel()

	m := New(prometheus.NewRegistry())
	m.ObserveComputation("STANDARD", 2*time.Millisecond)
	m.CacheHit()
	m.CacheMiss()
	m.CacheMiss()
	m.ResultRecorded("TIE")

	if got := testutil.ToFloat64(m.cacheRequests.WithLabelValues("miss")); got != 2 {
		t.Fatalf("expected 2 misses, got %v", got)
	}
	if got := testutil.ToFloat64(m.computations.WithLabelValues("STANDARD")); got != 1 {
		t.Fatalf("expected 1 computation, got %v", got)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "cricket_league_match_results_recorded_total") {
		t.Fatalf("expected results counter in exposition, got %s", rec.Body.String())
	}
}

func TestMetrics_MiddlewareUsesRoutePattern(t *testing.T) {
	t.Parallel()

	m := New(prometheus.NewRegistry())
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/standings", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	handler := m.Middleware(mux)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/tournaments/cup/standings", nil))

	got := testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "GET /v1/tournaments/{tournamentID}/standings", "418"))
	if got != 1 {
		t.Fatalf("expected request labelled by pattern, got %v", got)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.CacheHit()
	m.ObserveComputation("BALLS", time.Second)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	rec := httptest.NewRecorder()
	m.Middleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected passthrough, got %d", rec.Code)
	}
}
