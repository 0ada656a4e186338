package telemetry

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

type perfGauges struct {
	cpu        metric.Float64Gauge
	memory     metric.Int64Gauge
	goroutines metric.Int64Gauge
}

func newPerfGauges() (perfGauges, error) {
	meter := otel.Meter("biteutil/perf_stats")

	cpuGauge, err := meter.Float64Gauge("cpu_usage")
	if err != nil {
		return perfGauges{}, err
	}
	memoryGauge, err := meter.Int64Gauge("allocated_mb")
	if err != nil {
		return perfGauges{}, err
	}
	goroutineGauge, err := meter.Int64Gauge("goroutine_count")
	if err != nil {
		return perfGauges{}, err
	}
	return perfGauges{
		cpu:        cpuGauge,
		memory:     memoryGauge,
		goroutines: goroutineGauge,
	}, nil
}

func (g perfGauges) record(ctx context.Context, sample time.Duration) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	cpuUsage, err := cpu.PercentWithContext(ctx, sample, false)
	if err == nil && len(cpuUsage) > 0 {
		g.cpu.Record(ctx, cpuUsage[0])
	} else if ctx.Err() == nil {
		slog.Warn("failed to read cpu usage", "err", err)
	}

	g.memory.Record(ctx, int64(memStats.Alloc/1_000_000))
	g.goroutines.Record(ctx, int64(runtime.NumGoroutine()))
}

// InstrumentPerfStats records process gauges every interval until ctx is
// done. The gauges are created on the meter provider installed at call time.
func InstrumentPerfStats(ctx context.Context, interval time.Duration) error {
	gauges, err := newPerfGauges()
	if err != nil {
		return err
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				gauges.record(ctx, time.Second)
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}
