package infrastructure

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "weathermap"

// PrometheusMetricsCollector implements the MetricsCollector port on a
// private registry so tests and multiple instances never collide.
type PrometheusMetricsCollector struct {
	registry *prometheus.Registry

	upstreamRequests *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec
	staleResponses   *prometheus.CounterVec
	cacheHits        *prometheus.CounterVec
	cacheMisses      *prometheus.CounterVec
	cacheHitRatio    *prometheus.GaugeVec

	mu     sync.Mutex
	hits   map[string]int64
	misses map[string]int64
}

// NewPrometheusMetricsCollector registers all weathermap metrics plus the Go
// runtime and process collectors
func NewPrometheusMetricsCollector() *PrometheusMetricsCollector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &PrometheusMetricsCollector{
		registry: reg,
		upstreamRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "upstream_requests_total",
				Help:      "The total number of OpenWeatherMap requests",
			},
			[]string{"endpoint", "outcome"},
		),
		upstreamLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "upstream_request_duration_seconds",
				Help:      "OpenWeatherMap request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		staleResponses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "stale_responses_total",
				Help:      "Responses discarded because a newer location change superseded them",
			},
			[]string{"kind"},
		),
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cache_hits_total",
				Help:      "The total number of weather cache hits",
			},
			[]string{"kind"},
		),
		cacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cache_misses_total",
				Help:      "The total number of weather cache misses",
			},
			[]string{"kind"},
		),
		cacheHitRatio: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "cache_hit_ratio",
				Help:      "Cache hit ratio (hits/total lookups)",
			},
			[]string{"kind"},
		),
		hits:   make(map[string]int64),
		misses: make(map[string]int64),
	}
}

// RecordUpstreamCall counts one upstream request and observes its latency
func (m *PrometheusMetricsCollector) RecordUpstreamCall(endpoint string, success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.upstreamRequests.WithLabelValues(endpoint, outcome).Inc()
	m.upstreamLatency.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordStaleResponse counts a discarded response of the given kind
func (m *PrometheusMetricsCollector) RecordStaleResponse(kind string) {
	m.staleResponses.WithLabelValues(kind).Inc()
}

func (m *PrometheusMetricsCollector) RecordCacheHit(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hits[kind]++
	m.cacheHits.WithLabelValues(kind).Inc()
	m.updateHitRatio(kind)
}

func (m *PrometheusMetricsCollector) RecordCacheMiss(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.misses[kind]++
	m.cacheMisses.WithLabelValues(kind).Inc()
	m.updateHitRatio(kind)
}

// updateHitRatio must be called while holding the mutex
func (m *PrometheusMetricsCollector) updateHitRatio(kind string) {
	total := m.hits[kind] + m.misses[kind]
	if total > 0 {
		m.cacheHitRatio.WithLabelValues(kind).Set(float64(m.hits[kind]) / float64(total))
	}
}

// Registry exposes the underlying registry
func (m *PrometheusMetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *PrometheusMetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
