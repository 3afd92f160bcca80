// Package metrics exposes Prometheus metrics for analyses and the HTTP surface.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the metric instruments and the registry they live in
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	analyses         *prometheus.CounterVec
	analysisDuration *prometheus.HistogramVec
	catalogMismatch  *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// Option applies a configuration option to the Manager
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithHistogramBuckets sets the buckets for duration histograms, in seconds
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.histogramBuckets = buckets
		}
	}
}

// WithRegistry registers the metrics on registry instead of a fresh one
func WithRegistry(registry *prometheus.Registry) Option {
	return func(m *Manager) {
		if registry != nil {
			m.registry = registry
		}
	}
}

// NewManager creates a Manager and registers its instruments
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "styleadvisor",
		histogramBuckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	auto := promauto.With(m.registry)

	m.analyses = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "analyses_total",
		Help:      "Analyses by domain, provider and outcome (ok or fallback reason)",
	}, []string{"domain", "provider", "outcome"})

	m.analysisDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "analysis_duration_seconds",
		Help:      "Wall time of one analysis including the provider call",
		Buckets:   m.histogramBuckets,
	}, []string{"domain", "provider"})

	m.catalogMismatch = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "catalog_mismatch_total",
		Help:      "Reply values outside the domain catalog that were replaced by the default",
	}, []string{"domain", "field"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by path, method and status code",
	}, []string{"path", "method", "status_code"})

	m.httpDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration",
		Buckets:   m.histogramBuckets,
	}, []string{"path", "method"})

	return m
}

// ObserveAnalysis records one finished analysis
func (m *Manager) ObserveAnalysis(domain, provider, outcome string, elapsed time.Duration) {
	m.analyses.WithLabelValues(domain, provider, outcome).Inc()
	m.analysisDuration.WithLabelValues(domain, provider).Observe(elapsed.Seconds())
}

// ObserveCatalogMismatch records a reply value that was not a catalog name
func (m *Manager) ObserveCatalogMismatch(domain, field string) {
	m.catalogMismatch.WithLabelValues(domain, field).Inc()
}

// ObserveHTTPRequest records one served HTTP request
func (m *Manager) ObserveHTTPRequest(path, method, statusCode string, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(path, method, statusCode).Inc()
	m.httpDuration.WithLabelValues(path, method).Observe(elapsed.Seconds())
}

// Registry returns the registry holding the metrics
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
