// Package trace sets up the OpenTelemetry tracer used to record screen
// transitions.
package trace

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"hakbang/internal/config"
)

// InstrumentationName names the tracer handed to the UI.
const InstrumentationName = "hakbang/ui"

// Provider owns the tracer provider for one run of the app.
type Provider struct {
	provider  *sdktrace.TracerProvider
	tracer    oteltrace.Tracer
	SessionID string
}

// NewProvider exports spans over OTLP/HTTP when cfg.Endpoint is set.
// Otherwise the returned provider hands out a no-op tracer.
func NewProvider(ctx context.Context, cfg config.TraceConfig) (*Provider, error) {
	sessionID := uuid.NewString()
	if cfg.Endpoint == "" {
		return &Provider{
			tracer:    noop.NewTracerProvider().Tracer(InstrumentationName),
			SessionID: sessionID,
		}, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "hakbang"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		attribute.String("session.id", sessionID),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Provider{
		provider:  provider,
		tracer:    provider.Tracer(InstrumentationName),
		SessionID: sessionID,
	}, nil
}

// Tracer returns the tracer for UI spans.
func (p *Provider) Tracer() oteltrace.Tracer {
	return p.tracer
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p.provider != nil
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.provider == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
