// Package telemetry sets up OpenTelemetry tracing for outbound TMDB calls.
package telemetry

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const defaultSampleRate = 1.0

// ShutdownFunc flushes and stops the trace provider.
type ShutdownFunc func(context.Context) error

func noop(context.Context) error { return nil }

// Init installs a global trace provider exporting over OTLP/HTTP to
// OTEL_EXPORTER_OTLP_ENDPOINT. Without an endpoint tracing stays disabled. An
// exporter that cannot be created is logged and tracing is disabled as well.
// OTEL_TRACE_SAMPLE_RATE sets the ratio of sampled root spans.
func Init(ctx context.Context, serviceName string, logger *slog.Logger) (ShutdownFunc, error) {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "telemetry")

	endpoint := strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	if endpoint == "" {
		log.Debug("Tracing disabled, OTEL_EXPORTER_OTLP_ENDPOINT not set")
		return noop, nil
	}

	initCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(trimScheme(endpoint)),
		otlptracehttp.WithTimeout(3 * time.Second),
		otlptracehttp.WithRetry(otlptracehttp.RetryConfig{Enabled: false}),
	}
	if !strings.HasPrefix(endpoint, "https://") {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(initCtx, opts...)
	if err != nil {
		log.Warn("Tracing disabled, failed to create OTLP exporter", "endpoint", endpoint, "error", err)
		return noop, nil
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return nil, err
	}

	rate := SampleRate(os.Getenv("OTEL_TRACE_SAMPLE_RATE"))
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(rate))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Info("Tracing enabled", "endpoint", endpoint, "sample_rate", rate)
	return tp.Shutdown, nil
}

func trimScheme(endpoint string) string {
	return strings.TrimPrefix(strings.TrimPrefix(endpoint, "http://"), "https://")
}

// SampleRate parses raw as a ratio in [0,1], falling back to sampling
// everything when raw is empty or out of range.
func SampleRate(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultSampleRate
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || rate < 0 || rate > 1 {
		return defaultSampleRate
	}
	return rate
}
