package otel

import (
	"context"
	"time"

	"github.com/adrianliechti/paddleocr-ui/pkg/paddle"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type Provider interface {
	Observable
	paddle.Provider
}

type observableProvider struct {
	name string

	provider paddle.Provider

	durationMetric metric.Float64Histogram
}

func NewProvider(name string, p paddle.Provider) Provider {
	meter := otel.Meter(instrumentationName)

	durationMetric, _ := meter.Float64Histogram("paddle.request.duration",
		metric.WithDescription("Duration of layout parsing requests"),
		metric.WithUnit("s"),
	)

	return &observableProvider{
		name: name,

		provider: p,

		durationMetric: durationMetric,
	}
}

func (p *observableProvider) otelSetup() {
}

func (p *observableProvider) Parse(ctx context.Context, input paddle.Input, options *paddle.ParseOptions) (*paddle.Result, error) {
	mode := options.Mode()

	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "parse "+mode,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(KeyValues(
			[]KeyValue{String("paddle.provider", p.name)},
			InputAttrs(input),
			OptionsAttrs(options),
		)...),
	)

	defer span.End()

	timestamp := time.Now()

	result, err := p.provider.Parse(ctx, input, options)

	status := "ok"

	if err != nil {
		status = "error"

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	if result != nil {
		span.SetAttributes(attribute.Int("paddle.pages", len(result.LayoutParsingResults)))
	}

	if p.durationMetric != nil {
		p.durationMetric.Record(ctx, time.Since(timestamp).Seconds(), metric.WithAttributes(
			attribute.String("paddle.provider", p.name),
			attribute.String("paddle.mode", mode),
			attribute.String("paddle.status", status),
		))
	}

	return result, err
}
