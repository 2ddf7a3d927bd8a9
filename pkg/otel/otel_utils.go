package otel

import (
	"github.com/adrianliechti/paddleocr-ui/pkg/paddle"

	"go.opentelemetry.io/otel/attribute"
)

type KeyValue = attribute.KeyValue

func String(key string, val string) KeyValue {
	return attribute.String(key, val)
}

func Int(key string, val int) KeyValue {
	return attribute.Int(key, val)
}

func KeyValues(attrs ...[]KeyValue) []KeyValue {
	var result []KeyValue

	for _, a := range attrs {
		result = append(result, a...)
	}

	return result
}

func InputAttrs(input paddle.Input) []KeyValue {
	if paddle.IsURL(input.URL) {
		return []KeyValue{
			attribute.String("paddle.input", "url"),
		}
	}

	if input.File == nil {
		return nil
	}

	return []KeyValue{
		attribute.String("paddle.input", "file"),
		attribute.Int("paddle.file_type", paddle.FileType(input.File)),
		attribute.Int("paddle.file_size", len(input.File.Content)),
	}
}

func OptionsAttrs(options *paddle.ParseOptions) []KeyValue {
	attrs := []KeyValue{
		attribute.String("paddle.mode", options.Mode()),
	}

	if options == nil {
		return attrs
	}

	if !options.UseLayoutDetection {
		attrs = append(attrs, attribute.String("paddle.prompt_label", options.Mode()))
	}

	attrs = append(attrs,
		attribute.Bool("paddle.chart_recognition", options.UseChartRecognition),
		attribute.Bool("paddle.doc_unwarping", options.UseDocUnwarping),
		attribute.Bool("paddle.doc_orientation_classify", options.UseDocOrientationClassify),
	)

	return attrs
}
