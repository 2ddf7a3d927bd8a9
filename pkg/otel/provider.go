package otel

import (
	"os"
)

const instrumentationName = "github.com/adrianliechti/paddleocr-ui"

var (
	EnableTelemetry = false
)

func init() {
	EnableTelemetry = os.Getenv("TELEMETRY") != ""
}

type Observable interface {
	otelSetup()
}
