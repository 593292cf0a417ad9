package telemetry

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, telemetry *config.TelemetryConfig) Params {
	cfg := &config.Config{Telemetry: telemetry}
	cfg.Env.ServiceName = "storefront-test"

	return Params{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewTracerProvider_DisabledIsNoop(t *testing.T) {
	tp, err := NewTracerProvider(newParams(t, nil))
	require.NoError(t, err)

	assert.IsType(t, noop.TracerProvider{}, tp)
}

func TestNewTracerProvider_Stdout(t *testing.T) {
	tp, err := NewTracerProvider(newParams(t, &config.TelemetryConfig{Enabled: true, Exporter: ExporterStdout}))
	require.NoError(t, err)

	_, ok := tp.(*sdktrace.TracerProvider)
	assert.True(t, ok)
}

func TestNewTracerProvider_OTLPRequiresEndpoint(t *testing.T) {
	_, err := NewTracerProvider(newParams(t, &config.TelemetryConfig{Enabled: true, Exporter: ExporterOTLP}))
	assert.Error(t, err)
}

func TestNewTracerProvider_UnknownExporter(t *testing.T) {
	_, err := NewTracerProvider(newParams(t, &config.TelemetryConfig{Enabled: true, Exporter: "zipkin"}))
	assert.Error(t, err)
}
