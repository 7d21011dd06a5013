// Package telemetry provides OpenTelemetry tracing for campaign ticks,
// world generation and encounters.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName     = "roomwalk"
	honeycombURL    = "https://api.honeycomb.io"
	defaultDataset  = "roomwalk"
	tracerNamespace = "roomwalk/"
)

// Version is reported as service.version. The CLI overrides it at startup.
var Version = "0.1.0"

// Options controls how traces are exported.
type Options struct {
	// SampleRatio is the fraction of root spans kept, 0 < ratio <= 1.
	// Zero means keep everything.
	SampleRatio float64
}

// Setup installs a global tracer provider that exports over OTLP HTTP.
// The exporter reads the standard OTEL_EXPORTER_OTLP_* variables.
//
// The returned function flushes and stops the provider.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	// Built without resource.Default() to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", Version),
			attribute.String("host.name", hostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
	}

	sampler := sdktrace.AlwaysSample()
	if opts.SampleRatio > 0 && opts.SampleRatio < 1 {
		sampler = sdktrace.ParentBased(sdktrace.TraceIDRatioBased(opts.SampleRatio))
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// ConfigureHoneycomb points the OTLP exporter at Honeycomb.
// Nothing is set when apiKey is empty.
func ConfigureHoneycomb(apiKey, dataset string) {
	if apiKey == "" {
		return
	}
	if dataset == "" {
		dataset = defaultDataset
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", honeycombURL)
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(tracerNamespace + name)
}

// NoopTracer returns a tracer that records nothing.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(tracerNamespace + "noop")
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}
