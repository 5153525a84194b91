package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveCountsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe("GET", "/api/shifts", 200, 5*time.Millisecond)
	m.Observe("GET", "/api/shifts", 200, 7*time.Millisecond)
	m.Observe("POST", "/api/shifts", 409, time.Millisecond)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/shifts", "200")); got != 2 {
		t.Fatalf("expected 2 GET requests recorded, got %v", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("POST", "/api/shifts", "409")); got != 1 {
		t.Fatalf("expected 1 conflicting POST recorded, got %v", got)
	}
}

func TestObserveOnNilMetricsIsNoop(t *testing.T) {
	var m *HTTPMetrics
	m.Observe("GET", "/", 200, time.Millisecond)

	empty := NewHTTPMetrics(nil)
	empty.Observe("", "", 500, time.Millisecond)
}
