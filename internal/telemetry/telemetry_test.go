package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

func TestNewDisabledTelemetry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  *Config
	}{
		{name: "nil config", cfg: nil},
		{name: "disabled config", cfg: &Config{Enabled: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tel, err := New(context.Background(), WithTelemetryConfig(tt.cfg))
			require.NoError(t, err)
			require.NotNil(t, tel)

			// No-op providers must still produce usable tracers and meters.
			assert.NotNil(t, tel.Tracer("test"))
			assert.NotNil(t, tel.Meter("test"))
			assert.NoError(t, tel.Shutdown(context.Background()))
		})
	}
}

func TestNewTelemetryInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Enabled: true,
		Tracing: &TracingConfig{Enabled: true, Sampling: 2.0},
	}
	_, err := New(context.Background(), WithTelemetryConfig(cfg))
	assert.Error(t, err)
}

func TestNoOpProvidersWhenSignalsDisabled(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tp, err := NewTracerProvider(ctx, WithTracingConfig(&TracingConfig{Enabled: false}))
	require.NoError(t, err)
	assert.IsType(t, tracenoop.NewTracerProvider(), tp)

	mp, err := NewMeterProvider(ctx, WithMetricsConfig(&MetricsConfig{Enabled: false}))
	require.NoError(t, err)
	assert.IsType(t, metricnoop.NewMeterProvider(), mp)
}
