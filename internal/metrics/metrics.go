package metrics

import (
	"runtime"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aldus_http_requests_total",
			Help: "Total number of HTTP requests by route pattern and status code",
		},
		[]string{"route", "status"},
	)

	httpRequestTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aldus_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route pattern",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// Dataset metrics
	datasetLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aldus_dataset_loads_total",
			Help: "Total number of dataset file loads",
		},
		[]string{"dataset"},
	)

	datasetLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aldus_dataset_load_errors_total",
			Help: "Total number of dataset loads that failed, by reason",
		},
		[]string{"dataset", "reason"},
	)

	datasetLoadTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aldus_dataset_load_duration_seconds",
			Help:    "Time taken to read and decode a dataset file",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		},
		[]string{"dataset"},
	)

	datasetRecords = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aldus_dataset_records",
			Help:    "Number of records decoded per dataset load",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
		[]string{"dataset"},
	)

	// Aggregation metrics
	entitiesAggregated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aldus_entities_aggregated_total",
			Help: "Entities considered by the bulk aggregation, by outcome",
		},
		[]string{"outcome"},
	)

	// System metrics
	Uptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "aldus_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)

	Goroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "aldus_goroutines",
			Help: "Number of active goroutines",
		},
	)

	MemoryUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "aldus_memory_usage_bytes",
			Help: "Memory usage statistics",
		},
		[]string{"type"},
	)

	startTime = time.Now()
)

func HTTPRequestLog(route string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	httpRequestTime.WithLabelValues(route).Observe(duration.Seconds())
}

func DatasetLoadLog(dataset string, records int, duration time.Duration) {
	datasetLoads.WithLabelValues(dataset).Inc()
	datasetLoadTime.WithLabelValues(dataset).Observe(duration.Seconds())
	datasetRecords.WithLabelValues(dataset).Observe(float64(records))
}

func DatasetLoadErrorInc(dataset, reason string) {
	datasetLoads.WithLabelValues(dataset).Inc()
	datasetLoadErrors.WithLabelValues(dataset, reason).Inc()
}

func EntityAggregatedInc(included bool) {
	outcome := "included"
	if !included {
		outcome = "excluded"
	}
	entitiesAggregated.WithLabelValues(outcome).Inc()
}

// UpdateSystemMetrics updates runtime system metrics.
// This should be called periodically (e.g., every 15 seconds).
func UpdateSystemMetrics() {
	Uptime.Set(time.Since(startTime).Seconds())

	Goroutines.Set(float64(runtime.NumGoroutine()))

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	MemoryUsage.WithLabelValues("alloc").Set(float64(m.Alloc))
	MemoryUsage.WithLabelValues("sys").Set(float64(m.Sys))
	MemoryUsage.WithLabelValues("heap_inuse").Set(float64(m.HeapInuse))
}
