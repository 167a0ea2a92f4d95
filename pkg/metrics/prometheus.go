package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// validTiers are the label values accepted by RecordTrophyResolved.
var validTiers = map[string]struct{}{ //nolint:gochecknoglobals // fixed label set
	"SECRET": {}, "SSS": {}, "SS": {}, "S": {}, "AAA": {},
	"AA": {}, "A": {}, "B": {}, "C": {}, "UNKNOWN": {},
}

// Manager manages all Prometheus metrics for the trophy service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Domain
	trophiesResolved *prometheus.CounterVec
	collectionsBuilt prometheus.Counter
	buildErrors      prometheus.Counter
	catalogSize      prometheus.Gauge

	// Rendering
	cardsRendered prometheus.Counter
	renderLatency prometheus.Histogram
	cardTrophies  prometheus.Histogram

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	errorsByComponent *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "trophy",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.trophiesResolved = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "trophies_resolved_total",
		Help:      "Trophies resolved by catalog builds, by group and tier",
	}, []string{"group", "tier"})

	m.collectionsBuilt = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "collections_built_total",
		Help:      "Total number of successful catalog builds",
	})

	m.buildErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "build_errors_total",
		Help:      "Total number of failed catalog builds",
	})

	m.catalogSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_definitions",
		Help:      "Number of trophy definitions in the loaded catalog",
	})

	m.cardsRendered = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "render",
		Name:      "cards_total",
		Help:      "Total number of cards rendered",
	})

	m.renderLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "render",
		Name:      "latency_milliseconds",
		Help:      "Time to build and render one card in milliseconds",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100},
	})

	m.cardTrophies = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "render",
		Name:      "card_trophies",
		Help:      "Number of panels drawn per card",
		Buckets:   prometheus.LinearBuckets(0, 4, 8),
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.errorsByComponent = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_component_total",
		Help:      "Errors broken down by component and type",
	}, []string{"component", "error_type"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "memory_usage_bytes",
		Help:      "Heap bytes allocated",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "goroutine_count",
		Help:      "Number of goroutines",
	})
}

// RecordTrophyResolved counts one resolved trophy. Unknown tier labels are
// rejected to keep label cardinality bounded.
func (m *Manager) RecordTrophyResolved(group, tier string) error {
	if _, ok := validTiers[tier]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
	m.trophiesResolved.WithLabelValues(group, tier).Inc()
	return nil
}

// RecordCollectionBuilt increments the successful build counter.
func (m *Manager) RecordCollectionBuilt() { m.collectionsBuilt.Inc() }

// RecordBuildError increments the failed build counter.
func (m *Manager) RecordBuildError() { m.buildErrors.Inc() }

// UpdateCatalogSize sets the number of loaded definitions.
func (m *Manager) UpdateCatalogSize(n int) { m.catalogSize.Set(float64(n)) }

// RecordCardRendered counts a card and the number of panels it holds.
func (m *Manager) RecordCardRendered(panels int) {
	m.cardsRendered.Inc()
	m.cardTrophies.Observe(float64(panels))
}

// RecordRenderLatency records render latency in milliseconds.
func (m *Manager) RecordRenderLatency(latencyMs float64) { m.renderLatency.Observe(latencyMs) }

// RecordHTTPRequest records an HTTP request.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string) {
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in seconds.
func (m *Manager) RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByComponent records an error with component and type labels.
func (m *Manager) RecordErrorByComponent(component, errorType string) {
	m.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the heap usage in bytes.
func (m *Manager) UpdateSystemMemoryUsage(bytes uint64) { m.systemMemoryUsage.Set(float64(bytes)) }

// UpdateSystemGoroutineCount sets the number of goroutines.
func (m *Manager) UpdateSystemGoroutineCount(count int) { m.systemGoroutineCount.Set(float64(count)) }

// Package-level recorders delegate to the global manager.

func RecordTrophyResolved(group, tier string) error {
	return globalManager.RecordTrophyResolved(group, tier)
}

func RecordCollectionBuilt() { globalManager.RecordCollectionBuilt() }

func RecordBuildError() { globalManager.RecordBuildError() }

func UpdateCatalogSize(n int) { globalManager.UpdateCatalogSize(n) }

func RecordCardRendered(panels int) { globalManager.RecordCardRendered(panels) }

func RecordRenderLatency(latencyMs float64) { globalManager.RecordRenderLatency(latencyMs) }

func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode)
}

func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.RecordHTTPRequestDuration(endpoint, method, statusCode, duration)
}

func RecordErrorByComponent(component, errorType string) {
	globalManager.RecordErrorByComponent(component, errorType)
}

func UpdateSystemMemoryUsage(bytes uint64) { globalManager.UpdateSystemMemoryUsage(bytes) }

func UpdateSystemGoroutineCount(count int) { globalManager.UpdateSystemGoroutineCount(count) }

// Global returns the manager registered on the custom registry.
func Global() *Manager {
	return globalManager
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
