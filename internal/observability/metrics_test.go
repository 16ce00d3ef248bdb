package observability

import (
	"testing"
	"time"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/trips", "GET", 200, 5*time.Millisecond)
	m.RecordRequest("/trips", "GET", 200, 3*time.Millisecond)
	m.RecordError("/trips/1/close", "PATCH", "FORBIDDEN")

	if got := m.RequestCount("/trips", "GET", 200); got != 2 {
		t.Fatalf("request count = %d, want 2", got)
	}
	if got := m.ErrorCount("/trips/1/close", "PATCH", "FORBIDDEN"); got != 1 {
		t.Fatalf("error count = %d, want 1", got)
	}
	if got := m.RequestCount("/health", "GET", 200); got != 0 {
		t.Fatalf("untouched counter = %d, want 0", got)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/trips", "GET", 200, time.Millisecond)
	m.RecordError("/trips", "GET", "X")
	if m.RequestCount("/trips", "GET", 200) != 0 {
		t.Fatal("nil metrics should read zero")
	}
}
