package telemetry

import (
	"context"
	"testing"

	"github.com/ds611b/practicas/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestSetupTracing_Disabled(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		endpoint string
	}{
		{name: "disabled", enabled: false, endpoint: "localhost:4317"},
		{name: "no endpoint", enabled: true, endpoint: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Telemetry.Enabled = tt.enabled
			cfg.Telemetry.OtlpEndpoint = tt.endpoint

			tp, err := SetupTracing(cfg)
			require.NoError(t, err)
			assert.Nil(t, tp)
			assert.NoError(t, Shutdown(context.Background()))
		})
	}
}

func TestSampler(t *testing.T) {
	always := sdktrace.ParentBased(sdktrace.AlwaysSample()).Description()

	assert.Equal(t, always, sampler(0).Description())
	assert.Equal(t, always, sampler(1).Description())
	assert.Equal(t, always, sampler(2).Description())
	assert.Equal(t, sdktrace.ParentBased(sdktrace.TraceIDRatioBased(0.25)).Description(), sampler(0.25).Description())
}
