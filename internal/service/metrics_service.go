package service

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the room finder.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	cacheLookups    *prometheus.CounterVec
	cacheLatency    prometheus.Histogram
	queryResults    *prometheus.HistogramVec
	datasetBatches  prometheus.Gauge
	datasetSessions prometheus.Gauge
	datasetLoad     *prometheus.GaugeVec
}

// NewMetricsService registers the collectors on a private registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	cacheLookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cache_lookups_total",
		Help: "Cache lookups partitioned by result",
	}, []string{"result"})

	cacheLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cache_latency_seconds",
		Help:    "Latency for cache lookups",
		Buckets: prometheus.DefBuckets,
	})

	queryResults := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "query_results",
		Help:    "Number of records returned per query",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
	}, []string{"query"})

	datasetBatches := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dataset_batches",
		Help: "Number of batches in the loaded timetable",
	})

	datasetSessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dataset_sessions",
		Help: "Number of sessions in the loaded timetable",
	})

	datasetLoad := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "dataset_load_seconds",
		Help: "Time spent loading the timetable at startup",
	}, []string{"source"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, cacheLookups, cacheLatency, queryResults, datasetBatches, datasetSessions, datasetLoad, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		cacheLookups:    cacheLookups,
		cacheLatency:    cacheLatency,
		queryResults:    queryResults,
		datasetBatches:  datasetBatches,
		datasetSessions: datasetSessions,
		datasetLoad:     datasetLoad,
	}
}

// Registry exposes the underlying registry (used by tests).
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordCacheOperation records a cache hit or miss.
func (m *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
	m.cacheLatency.Observe(duration.Seconds())
}

// ObserveQuery records how many records a query returned.
func (m *MetricsService) ObserveQuery(query string, results int) {
	if m == nil {
		return
	}
	m.queryResults.WithLabelValues(query).Observe(float64(results))
}

// ObserveDatasetLoad records the size of the loaded timetable.
func (m *MetricsService) ObserveDatasetLoad(source string, batches, sessions int, duration time.Duration) {
	if m == nil {
		return
	}
	m.datasetBatches.Set(float64(batches))
	m.datasetSessions.Set(float64(sessions))
	m.datasetLoad.WithLabelValues(source).Set(duration.Seconds())
}
