package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestBuildMetrics_RecordsObservations(t *testing.T) {
	t.Parallel()

	m := NewBuildMetrics()
	m.ObservePhase("events", 1500*time.Millisecond)
	m.ObserveRows("events", 42)
	m.ObserveRows("events", 40)
	m.ObserveSkipped("tracking_files", 1)
	m.ObserveBuild(true, 3*time.Second)
	m.ObserveBuild(false, time.Second)

	if got := testutil.ToFloat64(m.PhaseDuration.WithLabelValues("events")); got != 1.5 {
		t.Fatalf("unexpected phase duration: %v", got)
	}
	if got := testutil.ToFloat64(m.RowsLoaded.WithLabelValues("events")); got != 40 {
		t.Fatalf("rows gauge must hold the last build, got %v", got)
	}
	if got := testutil.ToFloat64(m.Skipped.WithLabelValues("tracking_files")); got != 1 {
		t.Fatalf("unexpected skipped count: %v", got)
	}
	if got := testutil.ToFloat64(m.BuildsTotal.WithLabelValues("success")); got != 1 {
		t.Fatalf("unexpected success count: %v", got)
	}
	if got := testutil.ToFloat64(m.BuildsTotal.WithLabelValues("error")); got != 1 {
		t.Fatalf("unexpected error count: %v", got)
	}
	if got := testutil.ToFloat64(m.BuildDuration); got != 1 {
		t.Fatalf("build duration must reflect the last build, got %v", got)
	}
	if testutil.ToFloat64(m.LastSuccess) <= 0 {
		t.Fatalf("expected last success timestamp to be set")
	}
}

func TestBuildMetrics_PushSendsRegistry(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	var path atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		path.Store(r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	m := NewBuildMetrics()
	m.ObserveRows("matches", 1)
	if err := m.Push(t.Context(), server.URL, "football-warehouse"); err != nil {
		t.Fatalf("push: %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected one push request, got %d", calls.Load())
	}
	if p, _ := path.Load().(string); !strings.Contains(p, "/job/football-warehouse") {
		t.Fatalf("unexpected push path: %q", p)
	}
}

func TestBuildMetrics_PushDisabledWithoutURL(t *testing.T) {
	t.Parallel()

	if err := NewBuildMetrics().Push(t.Context(), "", "job"); err != nil {
		t.Fatalf("expected no-op push, got %v", err)
	}
}

func TestBuildMetrics_PushFailureIsReported(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	if err := NewBuildMetrics().Push(t.Context(), server.URL, "job"); err == nil {
		t.Fatalf("expected push error on 500")
	}
}
