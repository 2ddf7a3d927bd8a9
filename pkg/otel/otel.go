package otel

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/log/global"

	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
)

type ShutdownFunc func(ctx context.Context) error

// Setup installs the OTLP log, metric and trace pipelines when TELEMETRY is set.
// Exporters read the standard OTEL_EXPORTER_OTLP_* variables.
func Setup(ctx context.Context, name, version string) (ShutdownFunc, error) {
	if !EnableTelemetry {
		return func(context.Context) error { return nil }, nil
	}

	resource, err := sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewSchemaless(
			attribute.String("service.name", name),
			attribute.String("service.version", version),
		),
	)

	if err != nil {
		return nil, err
	}

	var shutdowns []ShutdownFunc

	shutdown := func(ctx context.Context) error {
		var errs []error

		for _, s := range shutdowns {
			errs = append(errs, s(ctx))
		}

		return errors.Join(errs...)
	}

	for _, setup := range []func(context.Context, *sdkresource.Resource) (ShutdownFunc, error){
		setupLogger,
		setupMeter,
		setupTracer,
	} {
		s, err := setup(ctx, resource)

		if err != nil {
			shutdown(ctx)
			return nil, err
		}

		shutdowns = append(shutdowns, s)
	}

	return shutdown, nil
}

func useGRPC(signal string) bool {
	if strings.ToLower(os.Getenv("OTEL_EXPORTER_OTLP_PROTOCOL")) == "grpc" {
		return true
	}

	return strings.ToLower(os.Getenv("OTEL_EXPORTER_OTLP_"+signal+"_PROTOCOL")) == "grpc"
}

func setupLogger(ctx context.Context, resource *sdkresource.Resource) (ShutdownFunc, error) {
	var err error
	var exporter sdklog.Exporter

	if useGRPC("LOGS") {
		exporter, err = otlploggrpc.New(ctx)
	} else {
		exporter, err = otlploghttp.New(ctx)
	}

	if err != nil {
		return nil, err
	}

	provider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(resource),
	)

	global.SetLoggerProvider(provider)

	logger := otelslog.NewLogger(instrumentationName, otelslog.WithLoggerProvider(provider))
	slog.SetDefault(logger)

	return provider.Shutdown, nil
}

func setupMeter(ctx context.Context, resource *sdkresource.Resource) (ShutdownFunc, error) {
	var err error
	var exporter sdkmetric.Exporter

	if useGRPC("METRICS") {
		exporter, err = otlpmetricgrpc.New(ctx)
	} else {
		exporter, err = otlpmetrichttp.New(ctx)
	}

	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))),
		sdkmetric.WithResource(resource),
	)

	otel.SetMeterProvider(provider)

	return provider.Shutdown, nil
}

func setupTracer(ctx context.Context, resource *sdkresource.Resource) (ShutdownFunc, error) {
	var err error
	var exporter sdktrace.SpanExporter

	if useGRPC("TRACES") {
		exporter, err = otlptracegrpc.New(ctx)
	} else {
		exporter, err = otlptracehttp.New(ctx)
	}

	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(time.Second)),
		sdktrace.WithResource(resource),
	)

	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}
