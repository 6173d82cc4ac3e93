// Package metrics exposes warehouse build measurements to Prometheus.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const namespace = "warehouse"

// BuildMetrics records build phases on a private registry. A CLI run is
// too short-lived to be scraped, so the registry is pushed to a
// Pushgateway when the run finishes.
type BuildMetrics struct {
	PhaseDuration *prometheus.GaugeVec
	RowsLoaded    *prometheus.GaugeVec
	Skipped       *prometheus.GaugeVec
	BuildDuration prometheus.Gauge
	LastSuccess   prometheus.Gauge
	BuildsTotal   *prometheus.CounterVec

	registry *prometheus.Registry
}

func NewBuildMetrics() *BuildMetrics {
	m := &BuildMetrics{
		registry: prometheus.NewRegistry(),
		PhaseDuration: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "phase_duration_seconds",
				Help:      "Wall time of the last run of each build phase",
			},
			[]string{"phase"},
		),
		RowsLoaded: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "rows_loaded",
				Help:      "Rows written per table by the last build",
			},
			[]string{"table"},
		),
		Skipped: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "skipped_items",
				Help:      "Items skipped by the last build by kind",
			},
			[]string{"kind"},
		),
		BuildDuration: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "build_duration_seconds",
				Help:      "Wall time of the last build",
			},
		),
		LastSuccess: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_success_timestamp_seconds",
				Help:      "Unix time of the last committed build",
			},
		),
		BuildsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "builds_total",
				Help:      "Builds by outcome",
			},
			[]string{"status"}, // "success", "error"
		),
	}

	m.registry.MustRegister(
		m.PhaseDuration,
		m.RowsLoaded,
		m.Skipped,
		m.BuildDuration,
		m.LastSuccess,
		m.BuildsTotal,
	)
	return m
}

func (m *BuildMetrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *BuildMetrics) ObservePhase(phase string, elapsed time.Duration) {
	m.PhaseDuration.WithLabelValues(phase).Set(elapsed.Seconds())
}

func (m *BuildMetrics) ObserveRows(table string, rows int) {
	m.RowsLoaded.WithLabelValues(table).Set(float64(rows))
}

func (m *BuildMetrics) ObserveSkipped(kind string, count int) {
	m.Skipped.WithLabelValues(kind).Set(float64(count))
}

func (m *BuildMetrics) ObserveBuild(succeeded bool, elapsed time.Duration) {
	m.BuildDuration.Set(elapsed.Seconds())
	if succeeded {
		m.BuildsTotal.WithLabelValues("success").Inc()
		m.LastSuccess.SetToCurrentTime()
		return
	}
	m.BuildsTotal.WithLabelValues("error").Inc()
}

// Push sends the registry to the Pushgateway at url under job. An empty
// url disables pushing.
func (m *BuildMetrics) Push(ctx context.Context, url, job string) error {
	if url == "" {
		return nil
	}
	if err := push.New(url, job).Gatherer(m.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics: %w", err)
	}
	return nil
}
