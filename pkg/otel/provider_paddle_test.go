package otel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/adrianliechti/paddleocr-ui/pkg/otel"
	"github.com/adrianliechti/paddleocr-ui/pkg/paddle"

	"github.com/stretchr/testify/require"

	otelapi "go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type stubProvider struct {
	result *paddle.Result
	err    error
}

func (p *stubProvider) Parse(ctx context.Context, input paddle.Input, options *paddle.ParseOptions) (*paddle.Result, error) {
	return p.result, p.err
}

func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	previous := otelapi.GetTracerProvider()
	otelapi.SetTracerProvider(provider)

	t.Cleanup(func() {
		otelapi.SetTracerProvider(previous)
		provider.Shutdown(context.Background())
	})

	return recorder
}

func spanAttrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	attrs := map[attribute.Key]attribute.Value{}

	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}

	return attrs
}

func TestProviderSpan(t *testing.T) {
	recorder := setupRecorder(t)

	p := otel.NewProvider("paddle", &stubProvider{
		result: &paddle.Result{
			LayoutParsingResults: []*paddle.LayoutParsingResult{{}, {}},
		},
	})

	input := paddle.Input{
		File: &paddle.File{Name: "doc.pdf", Content: []byte("%PDF")},
	}

	_, err := p.Parse(context.Background(), input, &paddle.ParseOptions{UseLayoutDetection: true})
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	span := spans[0]
	require.Equal(t, "parse layout", span.Name())
	require.Equal(t, codes.Unset, span.Status().Code)

	attrs := spanAttrs(span)
	require.Equal(t, "paddle", attrs["paddle.provider"].AsString())
	require.Equal(t, "file", attrs["paddle.input"].AsString())
	require.Equal(t, int64(paddle.FileTypePDF), attrs["paddle.file_type"].AsInt64())
	require.Equal(t, int64(2), attrs["paddle.pages"].AsInt64())
}

func TestProviderSpanError(t *testing.T) {
	recorder := setupRecorder(t)

	p := otel.NewProvider("paddle", &stubProvider{
		err: errors.New("boom"),
	})

	_, err := p.Parse(context.Background(), paddle.Input{URL: "https://example.com/a.png"}, &paddle.ParseOptions{PromptLabel: "Seal"})
	require.EqualError(t, err, "boom")

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	span := spans[0]
	require.Equal(t, "parse seal", span.Name())
	require.Equal(t, codes.Error, span.Status().Code)
	require.Equal(t, "seal", spanAttrs(span)["paddle.prompt_label"].AsString())
}

func TestSetupDisabled(t *testing.T) {
	otel.EnableTelemetry = false

	shutdown, err := otel.Setup(context.Background(), "paddleocr-ui", "test")
	require.NoError(t, err)

	require.NoError(t, shutdown(context.Background()))
}
