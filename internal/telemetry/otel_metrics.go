package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

type OtelMetrics struct {
	meter otelmetric.Meter

	requestCounter     otelmetric.Int64Counter
	requestDuration    otelmetric.Float64Histogram
	conversionCounter  otelmetric.Int64Counter
	conversionDuration otelmetric.Float64Histogram
	eventCounter       otelmetric.Int64Counter
}

var otelMetrics *OtelMetrics

func InitOtelMetrics() (*OtelMetrics, error) {
	meter := otel.GetMeterProvider().Meter("github.com/sahil-d-patel/AggieAce/converter")

	requestCounter, err := meter.Int64Counter(
		"http_requests_total",
		otelmetric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram(
		"http_request_duration_seconds",
		otelmetric.WithDescription("HTTP request duration in seconds"),
		otelmetric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	conversionCounter, err := meter.Int64Counter(
		"syllabus_conversions_total",
		otelmetric.WithDescription("Total number of syllabus conversions by outcome"),
	)
	if err != nil {
		return nil, err
	}

	conversionDuration, err := meter.Float64Histogram(
		"syllabus_conversion_duration_seconds",
		otelmetric.WithDescription("Syllabus conversion duration in seconds"),
		otelmetric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	eventCounter, err := meter.Int64Counter(
		"calendar_events_total",
		otelmetric.WithDescription("Total number of calendar events rendered"),
	)
	if err != nil {
		return nil, err
	}

	otelMetrics = &OtelMetrics{
		meter:              meter,
		requestCounter:     requestCounter,
		requestDuration:    requestDuration,
		conversionCounter:  conversionCounter,
		conversionDuration: conversionDuration,
		eventCounter:       eventCounter,
	}

	return otelMetrics, nil
}

func RecordOtelRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration) {
	if otelMetrics == nil {
		return
	}

	attrs := otelmetric.WithAttributes(
		attribute.String("method", method),
		attribute.String("path", path),
		attribute.Int("status", statusCode),
	)

	otelMetrics.requestCounter.Add(ctx, 1, attrs)
	otelMetrics.requestDuration.Record(ctx, duration.Seconds(), attrs)
}

func RecordOtelConversion(ctx context.Context, status string, events int, duration time.Duration) {
	if otelMetrics == nil {
		return
	}

	attrs := otelmetric.WithAttributes(attribute.String("status", status))

	otelMetrics.conversionCounter.Add(ctx, 1, attrs)
	otelMetrics.conversionDuration.Record(ctx, duration.Seconds(), attrs)
	otelMetrics.eventCounter.Add(ctx, int64(events), attrs)
}
