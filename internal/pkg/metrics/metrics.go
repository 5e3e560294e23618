// Package metrics exposes operation and HTTP metrics through a Prometheus exporter.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)

// Metrics holds the instruments recorded by the service.
type Metrics struct {
	HTTPRequests      metric.Int64Counter
	HTTPDuration      metric.Float64Histogram
	Operations        metric.Int64Counter
	OperationDuration metric.Float64Histogram
}

// Setup creates the instruments on a fresh registry and returns the scrape handler.
func Setup(serviceName string) (*Metrics, http.Handler, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	m := &Metrics{}

	m.HTTPRequests, err = meter.Int64Counter(
		"docstore_http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, nil, err
	}

	m.HTTPDuration, err = meter.Float64Histogram(
		"docstore_http_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
	)
	if err != nil {
		return nil, nil, err
	}

	m.Operations, err = meter.Int64Counter(
		"docstore_operations_total",
		metric.WithDescription("Total number of document store operations"),
	)
	if err != nil {
		return nil, nil, err
	}

	m.OperationDuration, err = meter.Float64Histogram(
		"docstore_operation_duration_seconds",
		metric.WithDescription("Document store operation duration in seconds"),
	)
	if err != nil {
		return nil, nil, err
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m, handler, nil
}

// RecordHTTPRequest records a completed HTTP request.
func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, path string, status int, duration time.Duration) {
	labels := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("path", path),
		attribute.Int("status", status),
	)

	m.HTTPRequests.Add(ctx, 1, labels)
	m.HTTPDuration.Record(ctx, duration.Seconds(), labels)
}

// RecordOperation records a completed document store operation.
func (m *Metrics) RecordOperation(ctx context.Context, operation string, duration time.Duration, err error) {
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeError
	}
	labels := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	)

	m.Operations.Add(ctx, 1, labels)
	m.OperationDuration.Record(ctx, duration.Seconds(), labels)
}
