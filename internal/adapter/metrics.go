package adapter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	m "github.com/mouse-blink/gofixer/internal/model"
)

// Metrics collects run statistics and exports them in the Prometheus text
// format.
type Metrics interface {
	ObserveReport(report *m.RunReport)
	WriteTextfile(path m.Path) error
}

// PrometheusMetrics implements Metrics on a private Prometheus registry, so
// several runs in one process never collide on the global registry.
type PrometheusMetrics struct {
	registry     *prometheus.Registry
	units        *prometheus.CounterVec
	unitDuration prometheus.Histogram
	runDuration  prometheus.Gauge
}

// NewPrometheusMetrics creates and registers the fixer metrics.
func NewPrometheusMetrics() *PrometheusMetrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &PrometheusMetrics{
		registry: registry,
		units: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gofixer_units_total",
				Help: "Number of processed units by outcome status.",
			},
			[]string{"status"},
		),
		unitDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gofixer_unit_duration_seconds",
				Help:    "Time spent processing a single unit.",
				Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
			},
		),
		runDuration: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "gofixer_run_duration_seconds",
				Help: "Wall-clock duration of the last run.",
			},
		),
	}
}

// ObserveReport records the counts and timings of a finished run.
func (pm *PrometheusMetrics) ObserveReport(report *m.RunReport) {
	if report == nil {
		return
	}

	for status, count := range report.Counts {
		pm.units.WithLabelValues(status.String()).Add(float64(count))
	}

	for _, elapsed := range report.Durations {
		pm.unitDuration.Observe(elapsed.Seconds())
	}

	pm.runDuration.Set(report.Elapsed.Seconds())
}

// WriteTextfile writes the registry in the node-exporter textfile format.
func (pm *PrometheusMetrics) WriteTextfile(path m.Path) error {
	return prometheus.WriteToTextfile(string(path), pm.registry)
}

// Registry exposes the underlying registry.
func (pm *PrometheusMetrics) Registry() *prometheus.Registry {
	return pm.registry
}

// NullMetrics discards everything.
type NullMetrics struct{}

// ObserveReport is a no-op.
func (NullMetrics) ObserveReport(*m.RunReport) {}

// WriteTextfile is a no-op.
func (NullMetrics) WriteTextfile(m.Path) error { return nil }
