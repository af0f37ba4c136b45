// Package telemetry wires the grid engine's event dispatch into
// OpenTelemetry. Export is opt-in: without OTEL_EXPORTER_OTLP_ENDPOINT in
// the environment every call degrades to a no-op span.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Exporter batches engine-event spans to an OTLP HTTP endpoint.
type Exporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// New creates an OTLP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if the endpoint is not configured (tracing disabled); a nil
// *Exporter is safe to use.
func New(ctx context.Context) (*Exporter, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local dev; make configurable
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "dashgrid"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &Exporter{
		provider: provider,
		tracer:   provider.Tracer("dashgrid/layout"),
	}, nil
}

// StartSpan opens a span for one engine event dispatch. When the exporter
// is nil or disabled it returns the context unchanged with a no-op span,
// so callers never need to branch.
func (e *Exporter) StartSpan(ctx context.Context, name string) (context.Context, oteltrace.Span) {
	if e == nil {
		return ctx, oteltrace.SpanFromContext(context.Background())
	}
	return e.tracer.Start(ctx, name)
}

// Shutdown flushes pending spans. Safe on a nil exporter.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
