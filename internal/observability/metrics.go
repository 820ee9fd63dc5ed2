package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// impact calculator.
type Metrics struct {
	EffectsComputed    prometheus.Counter
	EffectsErrors      prometheus.Counter
	SceneBuildDuration prometheus.Histogram

	// Catalog lookup metrics.
	CatalogRequests    *prometheus.CounterVec   // labels: method={lookup,browse}, outcome={success,error}
	CatalogCache       *prometheus.CounterVec   // labels: method={lookup,search}, result={hit,miss}
	CatalogAPIDuration *prometheus.HistogramVec // labels: method={lookup,browse}
	CatalogEnabled     prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		EffectsComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "impactmap",
			Name:      "effects_computed_total",
			Help:      "Total effect computations served.",
		}),
		EffectsErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "impactmap",
			Name:      "effects_errors_total",
			Help:      "Total effect computations rejected for invalid parameters.",
		}),
		SceneBuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "impactmap",
			Name:      "scene_build_duration_seconds",
			Help:      "Duration of one scene-graph build.",
			Buckets:   []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
		}),
		CatalogRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "impactmap",
			Name:      "catalog_requests_total",
			Help:      "NEO catalog API requests by method and outcome.",
		}, []string{"method", "outcome"}),
		CatalogCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "impactmap",
			Name:      "catalog_cache_total",
			Help:      "NEO catalog cache lookups by method and result.",
		}, []string{"method", "result"}),
		CatalogAPIDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "impactmap",
			Name:      "catalog_api_duration_seconds",
			Help:      "NEO catalog API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method"}),
		CatalogEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "impactmap",
			Name:      "catalog_enabled",
			Help:      "1 when NEO catalog lookup is enabled, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.EffectsComputed,
		m.EffectsErrors,
		m.SceneBuildDuration,
		m.CatalogRequests,
		m.CatalogCache,
		m.CatalogAPIDuration,
		m.CatalogEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics with unregistered collectors to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		EffectsComputed:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "impactmap", Name: "effects_computed_total"}),
		EffectsErrors:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "impactmap", Name: "effects_errors_total"}),
		SceneBuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "impactmap", Name: "scene_build_duration_seconds"}),
		CatalogRequests:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "impactmap", Name: "catalog_requests_total"}, []string{"method", "outcome"}),
		CatalogCache:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "impactmap", Name: "catalog_cache_total"}, []string{"method", "result"}),
		CatalogAPIDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "impactmap", Name: "catalog_api_duration_seconds"}, []string{"method"}),
		CatalogEnabled:     prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "impactmap", Name: "catalog_enabled"}),
	}
}
