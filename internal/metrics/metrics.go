// Package metrics holds the Prometheus collectors for page rendering.
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "formdocs"

// Cache results recorded by ObserveCache.
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// Metrics owns a private registry so tests can build independent instances.
type Metrics struct {
	registry       *prometheus.Registry
	renders        *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	cache          *prometheus.CounterVec
}

// New creates and registers all collectors.
func New() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_renders_total",
			Help:      "Total number of page renders",
		}, []string{"page"}),
		renderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "page_render_duration_seconds",
			Help:      "Time spent rendering a page",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"page"}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_cache_total",
			Help:      "Rendered page cache lookups by result",
		}, []string{"page", "result"}),
	}

	for _, c := range []prometheus.Collector{
		m.renders,
		m.renderDuration,
		m.cache,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}
	return m, nil
}

// ObserveRender records one render of page that took d.
func (m *Metrics) ObserveRender(page string, d time.Duration) {
	m.renders.WithLabelValues(page).Inc()
	m.renderDuration.WithLabelValues(page).Observe(d.Seconds())
}

// ObserveCache records a cache lookup result for page.
func (m *Metrics) ObserveCache(page, result string) {
	m.cache.WithLabelValues(page, result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.HTTPErrorOnError,
	})
}
