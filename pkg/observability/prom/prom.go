// Package prom implements the observability hooks on Prometheus.
//
// Metrics (all namespaced "portwire_"):
//
//   - converter_lookups_total{result}: exact-match converter lookups
//   - model_creates_total{result}: model instantiations by name
//   - paint_passes_total{pass}: executed connection draw passes
//   - renders_total{format,status}: finished artifact renders
//   - render_duration_seconds{format}: artifact render latency
//   - render_connections{format}: connections per rendered artifact
//   - cache_requests_total{key_type,result}: cache hits and misses
//   - cache_written_bytes_total{key_type}: bytes written to the cache
//
// Usage:
//
//	registry := prometheus.NewRegistry()
//	m := prom.New(registry)
//	m.Install()
//	http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
package prom

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/matzehuels/portwire/pkg/observability"
)

const namespace = "portwire"

// Metrics implements every observability hook interface.
type Metrics struct {
	converterLookups *prometheus.CounterVec
	modelCreates     *prometheus.CounterVec
	paintPasses      *prometheus.CounterVec

	renders           *prometheus.CounterVec
	renderDuration    *prometheus.HistogramVec
	renderConnections *prometheus.HistogramVec

	cacheRequests *prometheus.CounterVec
	cacheBytes    *prometheus.CounterVec
}

// New creates and registers all metrics with registry. A nil registry uses
// prometheus.DefaultRegisterer.
func New(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		converterLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "converter_lookups_total",
			Help:      "Converter lookups by result (found, missing)",
		}, []string{"result"}),
		modelCreates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "model_creates_total",
			Help:      "Model instantiations by result (found, missing)",
		}, []string{"result"}),
		paintPasses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "paint_passes_total",
			Help:      "Executed connection draw passes",
		}, []string{"pass"}),
		renders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Finished artifact renders by format and status",
		}, []string{"format", "status"}),
		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Artifact render latency",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		}, []string{"format"}),
		renderConnections: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_connections",
			Help:      "Connections painted per artifact",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 6),
		}, []string{"format"}),
		cacheRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_requests_total",
			Help:      "Cache lookups by key type and result (hit, miss)",
		}, []string{"key_type", "result"}),
		cacheBytes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_written_bytes_total",
			Help:      "Bytes written to the cache",
		}, []string{"key_type"}),
	}
}

// Install registers m as the process-wide registry, render and cache hooks.
func (m *Metrics) Install() {
	observability.SetRegistryHooks(m)
	observability.SetRenderHooks(m)
	observability.SetCacheHooks(m)
}

func result(found bool) string {
	if found {
		return "found"
	}
	return "missing"
}

func (m *Metrics) OnConverterLookup(_, _ string, found bool) {
	m.converterLookups.WithLabelValues(result(found)).Inc()
}

func (m *Metrics) OnModelCreate(_ string, found bool) {
	m.modelCreates.WithLabelValues(result(found)).Inc()
}

func (m *Metrics) OnPaint(pass string) {
	m.paintPasses.WithLabelValues(pass).Inc()
}

func (m *Metrics) OnRenderComplete(_ context.Context, format string, connections int, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.renders.WithLabelValues(format, status).Inc()
	m.renderDuration.WithLabelValues(format).Observe(d.Seconds())
	m.renderConnections.WithLabelValues(format).Observe(float64(connections))
}

func (m *Metrics) OnCacheHit(_ context.Context, keyType string) {
	m.cacheRequests.WithLabelValues(keyType, "hit").Inc()
}

func (m *Metrics) OnCacheMiss(_ context.Context, keyType string) {
	m.cacheRequests.WithLabelValues(keyType, "miss").Inc()
}

func (m *Metrics) OnCacheSet(_ context.Context, keyType string, size int) {
	m.cacheBytes.WithLabelValues(keyType).Add(float64(size))
}

var (
	_ observability.RegistryHooks = (*Metrics)(nil)
	_ observability.RenderHooks   = (*Metrics)(nil)
	_ observability.CacheHooks    = (*Metrics)(nil)
)
