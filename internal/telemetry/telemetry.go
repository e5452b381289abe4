package telemetry

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

func Init() {
	if _, err := InitOtelMetrics(); err != nil {
		slog.Warn("Failed to initialize OpenTelemetry metrics", "error", err)
	}
}

func RecordRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration) {
	RecordPrometheusRequest(method, path, statusCode, duration.Seconds())
	RecordOtelRequest(ctx, method, path, statusCode, duration)
}

// RecordConversion records the outcome of one syllabus conversion. Status is
// "ok" or "error"; events is the number of parsed calendar events.
func RecordConversion(ctx context.Context, status string, events int, duration time.Duration) {
	RecordPrometheusConversion(status, events, duration.Seconds())
	RecordOtelConversion(ctx, status, events, duration)
}

func GetMetricsHandler() http.Handler {
	return GetPrometheusHandler()
}
