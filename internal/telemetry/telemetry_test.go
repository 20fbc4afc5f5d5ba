package telemetry

import (
	"context"
	"strings"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestSampler(t *testing.T) {
	tests := []struct {
		ratio    float64
		contains string
	}{
		{1, "AlwaysOnSampler"},
		{-1, "AlwaysOnSampler"},
		{0.25, "TraceIDRatioBased{0.25}"},
	}

	for _, tt := range tests {
		desc := sampler(tt.ratio).Description()
		if !strings.Contains(desc, tt.contains) {
			t.Errorf("sampler(%v).Description() = %q, want it to contain %q", tt.ratio, desc, tt.contains)
		}
	}
}

func TestTracerWithoutSetup(t *testing.T) {
	// Spans must be safe to create before Setup.
	_, span := Tracer("test").Start(context.Background(), "noop")
	span.End()
}

func TestTracerRecordsWithProvider(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer tp.Shutdown(context.Background())

	_, span := tp.Tracer(serviceName + "/test").Start(context.Background(), "recorded")
	if !span.IsRecording() {
		t.Error("span from SDK provider should record")
	}
	span.End()
}
