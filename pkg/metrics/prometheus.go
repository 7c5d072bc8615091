// Package metrics provides Prometheus metrics for the insertion dashboard.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Manager manages all Prometheus metrics for the dashboard service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Retrieval metrics - one series per named dataset
	datasetFetches      *prometheus.CounterVec
	datasetFetchLatency *prometheus.HistogramVec
	datasetRecords      *prometheus.GaugeVec

	// View metrics
	viewBuilds       *prometheus.CounterVec
	viewBuildLatency *prometheus.HistogramVec
	absentInsights    *prometheus.CounterVec

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorRateByEndpoint *prometheus.CounterVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "insertion",
		subsystem:        "dashboard",
		histogramBuckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // one block per metric family
	auto := promauto.With(m.registry)

	m.datasetFetches = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_fetches_total",
		Help:      "Dataset retrievals by dataset name and outcome",
	}, []string{"dataset", "outcome"})

	m.datasetFetchLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_fetch_duration_milliseconds",
		Help:      "Dataset retrieval latency in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"dataset"})

	m.datasetRecords = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_records",
		Help:      "Number of records in the last retrieved snapshot of a dataset",
	}, []string{"dataset"})

	m.viewBuilds = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "view_builds_total",
		Help:      "View builds by view name and outcome",
	}, []string{"view", "outcome"})

	m.viewBuildLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "view_build_duration_milliseconds",
		Help:      "End to end view build latency (retrieval included) in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"view"})

	m.absentInsights = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "absent_insights_total",
		Help:      "Insights rendered with the neutral placeholder, by view",
	}, []string{"view"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint and method",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.errorRateByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_endpoint_total",
		Help:      "Error responses by endpoint, method and error type",
	}, []string{"endpoint", "method", "error_type"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_time_milliseconds",
		Help:      "GC pause time in milliseconds",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
}

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}

// RecordDatasetFetch records one retrieval of a named dataset.
func (m *Manager) RecordDatasetFetch(dataset string, latencyMs float64, err error) {
	if !m.enabled {
		return
	}
	m.datasetFetches.WithLabelValues(dataset, outcome(err)).Inc()
	m.datasetFetchLatency.WithLabelValues(dataset).Observe(latencyMs)
}

// RecordDatasetFetch records a retrieval on the global manager.
func RecordDatasetFetch(dataset string, latencyMs float64, err error) {
	globalManager.RecordDatasetFetch(dataset, latencyMs, err)
}

// UpdateDatasetRecords sets the size of the last snapshot of a dataset.
func UpdateDatasetRecords(dataset string, count int) {
	if !globalManager.enabled {
		return
	}
	globalManager.datasetRecords.WithLabelValues(dataset).Set(float64(count))
}

// RecordViewBuild records one view build.
func (m *Manager) RecordViewBuild(view string, latencyMs float64, err error) {
	if !m.enabled {
		return
	}
	m.viewBuilds.WithLabelValues(view, outcome(err)).Inc()
	m.viewBuildLatency.WithLabelValues(view).Observe(latencyMs)
}

// RecordViewBuild records a view build on the global manager.
func RecordViewBuild(view string, latencyMs float64, err error) {
	globalManager.RecordViewBuild(view, latencyMs, err)
}

// RecordAbsentInsights counts insights that fell back to the neutral text.
func RecordAbsentInsights(view string, count int) {
	if !globalManager.enabled || count <= 0 {
		return
	}
	globalManager.absentInsights.WithLabelValues(view).Add(float64(count))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
