package bench

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects experiment observations in a private registry.
// A nil *Metrics discards everything.
type Metrics struct {
	registry *prometheus.Registry

	trials          prometheus.Counter
	ratio           prometheus.Histogram
	averageAccess   *prometheus.HistogramVec
	optimizeSeconds prometheus.Histogram
}

// NewMetrics creates a metrics set with its own registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		trials: factory.NewCounter(prometheus.CounterOpts{
			Name: "rope_bench_trials_total",
			Help: "Total completed advantage trials",
		}),

		ratio: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "rope_bench_advantage_ratio",
			Help:    "Average access of the treap layout divided by the optimal layout",
			Buckets: prometheus.LinearBuckets(1, 0.1, 15),
		}),

		averageAccess: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rope_bench_average_access",
			Help:    "Expected nodes visited per element read, by layout",
			Buckets: prometheus.LinearBuckets(1, 0.5, 16),
		}, []string{"layout"}),

		optimizeSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "rope_bench_optimize_duration_seconds",
			Help:    "Optimal rebuild duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16), // 10µs to ~330ms
		}),
	}
}

// Registry returns the registry holding the metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// observeTrial records one finished trial.
func (m *Metrics) observeTrial(treapAvg, optimalAvg float64, optimize time.Duration) {
	if m == nil {
		return
	}
	m.trials.Inc()
	m.averageAccess.WithLabelValues("treap").Observe(treapAvg)
	m.averageAccess.WithLabelValues("optimal").Observe(optimalAvg)
	m.ratio.Observe(treapAvg / optimalAvg)
	m.optimizeSeconds.Observe(optimize.Seconds())
}

// WriteTextfile writes the metrics to path in the Prometheus text format,
// suitable for the node exporter's textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
