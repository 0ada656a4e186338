package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestOtelAPI(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	previous := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)
	t.Cleanup(func() {
		otel.SetMeterProvider(previous)
		provider.Shutdown(context.Background())
	})

	mem := NewMemoryAPI()
	tel, err := NewOtelAPI(mem)
	require.NoError(t, err)

	tel.ReportBroken("json.parse", "bad")
	tel.ReportBroken("json.parse", "worse")
	tel.ReportWarning("nav.set-active")
	tel.ReportDebug("request")
	tel.ReportCount("http.request-count", 7)

	// everything still reaches the inner api
	require.Len(t, mem.Reports(), 5)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	found := map[string]int64{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		switch data := m.Data.(type) {
		case metricdata.Sum[int64]:
			found[m.Name] = data.DataPoints[0].Value
		case metricdata.Gauge[int64]:
			found[m.Name] = data.DataPoints[0].Value
		}
	}
	require.Equal(t, map[string]int64{
		"reports.broken":  2,
		"reports.warning": 1,
		"reports.count":   7,
	}, found)
}
