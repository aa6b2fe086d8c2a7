// Package trace exports navigation activity to an OTLP endpoint. Each
// navigation operation (push, pop, unwind) becomes one span carrying the
// affected record key and the stack depth before and after.
package trace

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Span attribute keys for navigation operations.
var (
	AttrOp          = attribute.Key("nav.op")
	AttrRecordKey   = attribute.Key("nav.record_key")
	AttrDepthBefore = attribute.Key("nav.depth_before")
	AttrDepthAfter  = attribute.Key("nav.depth_after")
)

// NavTracer exports navigation spans to OTLP. A nil *NavTracer is a valid
// no-op tracer, so callers never need to branch on whether tracing is
// configured.
type NavTracer struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewNavTracer creates an OTLP-backed tracer if OTEL_EXPORTER_OTLP_ENDPOINT
// is set. Returns nil (disabled) if the endpoint is not configured.
func NewNavTracer(ctx context.Context) (*NavTracer, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
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
		serviceName = "navstack"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &NavTracer{
		provider: provider,
		tracer:   provider.Tracer("navstack/navigator"),
	}, nil
}

// Operation records one completed navigation operation. Navigation is
// synchronous and instantaneous, so the span starts and ends immediately.
func (t *NavTracer) Operation(ctx context.Context, op string, attrs ...attribute.KeyValue) {
	if t == nil {
		return
	}
	all := append([]attribute.KeyValue{AttrOp.String(op)}, attrs...)
	_, span := t.tracer.Start(ctx, "nav."+op, oteltrace.WithAttributes(all...))
	span.End()
}

// Shutdown flushes pending spans and stops the provider.
func (t *NavTracer) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
