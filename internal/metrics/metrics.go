// Package metrics owns the Prometheus collectors exported at /metrics.
//
// Collectors register on a private registry so tests can build as many
// Metrics as they like without duplicate-registration panics.
package metrics

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
)

// Metrics holds every collector.
type Metrics struct {
	registry *prometheus.Registry

	// Request metrics
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec

	// Kata metrics
	rateDecisions *prometheus.CounterVec
	cacheLookups  *prometheus.CounterVec
	cacheEvicts   prometheus.Counter
	kvKeys        prometheus.Gauge
	kvExpired     prometheus.Counter
	fetchRetries  prometheus.Counter
}

// New creates the collectors on a fresh registry, including Go runtime
// and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		requestTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		rateDecisions: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ratelimit_decisions_total",
				Help: "Rate limiter decisions by outcome",
			},
			[]string{"outcome"},
		),
		cacheLookups: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lru_lookups_total",
				Help: "LRU cache lookups by result",
			},
			[]string{"result"},
		),
		cacheEvicts: f.NewCounter(prometheus.CounterOpts{
			Name: "lru_evictions_total",
			Help: "Entries evicted from the LRU cache",
		}),
		kvKeys: f.NewGauge(prometheus.GaugeOpts{
			Name: "kv_keys",
			Help: "Live keys in the TTL store",
		}),
		kvExpired: f.NewCounter(prometheus.CounterOpts{
			Name: "kv_expired_total",
			Help: "Keys removed by the TTL janitor",
		}),
		fetchRetries: f.NewCounter(prometheus.CounterOpts{
			Name: "fetch_retries_total",
			Help: "Retried URL fetch attempts",
		}),
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(method, route string, status int, took time.Duration) {
	code := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, route, code).Observe(took.Seconds())
	m.requestTotal.WithLabelValues(method, route, code).Inc()
}

// RateDecision counts an allow or deny.
func (m *Metrics) RateDecision(allowed bool) {
	if allowed {
		m.rateDecisions.WithLabelValues("allowed").Inc()
		return
	}
	m.rateDecisions.WithLabelValues("denied").Inc()
}

// CacheLookup counts an LRU hit or miss; it fits lru.WithStatsHook.
func (m *Metrics) CacheLookup(hit bool) {
	if hit {
		m.cacheLookups.WithLabelValues("hit").Inc()
		return
	}
	m.cacheLookups.WithLabelValues("miss").Inc()
}

// CacheEvicted counts one LRU eviction.
func (m *Metrics) CacheEvicted() { m.cacheEvicts.Inc() }

// KVSwept records a janitor pass and the keys left afterwards.
func (m *Metrics) KVSwept(removed, live int) {
	m.kvExpired.Add(float64(removed))
	m.kvKeys.Set(float64(live))
}

// FetchRetried counts one retried fetch attempt.
func (m *Metrics) FetchRetried() { m.fetchRetries.Inc() }

// WriteText writes every collector to w in the Prometheus text format,
// for commands that exit before anything could scrape them.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
