package telemetry_test

import (
	"context"
	"testing"

	"github.com/edgard/tmdbot/internal/telemetry"
)

func TestSampleRate(t *testing.T) {
	t.Parallel()

	tests := map[string]float64{
		"":      1,
		"0":     0,
		"0.25":  0.25,
		" 1 ":   1,
		"1.5":   1,
		"-0.1":  1,
		"often": 1,
	}
	for in, want := range tests {
		if got := telemetry.SampleRate(in); got != want {
			t.Errorf("SampleRate(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInitDisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	shutdown, err := telemetry.Init(context.Background(), "tmdbot", nil)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}
