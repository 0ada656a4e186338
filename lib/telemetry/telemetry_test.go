package telemetry

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSetupDisabled(t *testing.T) {
	tel, err := Setup(context.Background(), "test:telemetry", Config{})
	require.NoError(t, err)
	require.Nil(t, tel.TracerProvider)
	require.Nil(t, tel.MeterProvider)
	require.NoError(t, tel.Shutdown(context.Background()))
}

func TestConfigEnabled(t *testing.T) {
	require.False(t, Config{}.Enabled())
	require.True(t, Config{Otlp: OtlpConfig{
		Metrics: OtlpConnConfig{HttpEndpoint: "http://localhost:4318/v1/metrics"},
	}}.Enabled())
}

func TestInstrumentPerfStats(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// the global no-op meter provider is enough to exercise the loop
	err := InstrumentPerfStats(ctx, 10*time.Millisecond)
	require.NoError(t, err)
	time.Sleep(30 * time.Millisecond)
}

func TestSetupRequiresServiceName(t *testing.T) {
	require.Panics(t, func() {
		Setup(context.Background(), "", Config{})
	})
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	previous, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		os.Chdir(previous)
	})
}

func TestSetupFromEnv(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	chdir(t, nested)

	// nothing to find
	tel, err := SetupFromEnv(context.Background(), "test:telemetry")
	require.NoError(t, err)
	require.Nil(t, tel.TracerProvider)

	// found two levels up, no endpoints so nothing is exported
	err = os.WriteFile(
		filepath.Join(root, "telemetry.json5"),
		[]byte("{ otlp: { traces: {}, }, // no endpoints\n}"),
		0644,
	)
	require.NoError(t, err)
	tel, err = SetupFromEnv(context.Background(), "test:telemetry")
	require.NoError(t, err)
	require.Nil(t, tel.TracerProvider)
	require.Nil(t, tel.MeterProvider)

	err = os.WriteFile(filepath.Join(root, "telemetry.json5"), []byte("{ otlp: "), 0644)
	require.NoError(t, err)
	_, err = SetupFromEnv(context.Background(), "test:telemetry")
	require.Error(t, err)
}
