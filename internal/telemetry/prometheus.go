package telemetry

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	conversionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "syllabus_conversions_total",
		Help: "Total number of syllabus conversions by outcome",
	}, []string{"status"})

	conversionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "syllabus_conversion_duration_seconds",
		Help:    "Syllabus conversion duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"status"})

	calendarEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "calendar_events_total",
		Help: "Total number of calendar events rendered",
	})
)

func RecordPrometheusRequest(method, path string, statusCode int, duration float64) {
	labels := prometheus.Labels{
		"method": method,
		"path":   path,
		"status": strconv.Itoa(statusCode),
	}

	requestsTotal.With(labels).Inc()
	requestDuration.With(labels).Observe(duration)
}

func RecordPrometheusConversion(status string, events int, duration float64) {
	conversionsTotal.WithLabelValues(status).Inc()
	conversionDuration.WithLabelValues(status).Observe(duration)
	calendarEventsTotal.Add(float64(events))
}

func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}
