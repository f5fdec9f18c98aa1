package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// collect gathers all metrics recorded against the reader into a name-keyed
// map.
func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := make(map[string]metricdata.Metrics)
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func sumDatapoints(t *testing.T, m metricdata.Metrics) int64 {
	t.Helper()
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

func TestLogger_RecordsEmissionMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	previous := otel.GetMeterProvider()
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	t.Cleanup(func() { otel.SetMeterProvider(previous) })

	logger, err := NewWithStreams(
		Config{Level: LevelInfo, Format: "json"},
		&bytes.Buffer{}, &bytes.Buffer{},
	)
	require.NoError(t, err)

	ctx := context.Background()
	logger.Info(ctx, "emitted", nil)
	logger.Warn(ctx, "also emitted", nil)
	logger.Debug(ctx, "suppressed", nil)

	metrics := collect(t, reader)

	emitted, ok := metrics["log_entries_emitted_total"]
	require.True(t, ok)
	assert.Equal(t, int64(2), sumDatapoints(t, emitted))

	suppressed, ok := metrics["log_entries_suppressed_total"]
	require.True(t, ok)
	assert.Equal(t, int64(1), sumDatapoints(t, suppressed))
}

func TestLogger_RecordsTimerHistogram(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	previous := otel.GetMeterProvider()
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	t.Cleanup(func() { otel.SetMeterProvider(previous) })

	logger, err := NewWithStreams(
		Config{Level: LevelDebug, Format: "json"},
		&bytes.Buffer{}, &bytes.Buffer{},
	)
	require.NoError(t, err)

	logger.StartTimer("work")
	logger.EndTimer("work")

	metrics := collect(t, reader)
	histogram, ok := metrics["log_timer_duration_seconds"]
	require.True(t, ok)

	data, ok := histogram.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, data.DataPoints, 1)
	assert.Equal(t, uint64(1), data.DataPoints[0].Count)
}

func TestInstruments_NilGuards(t *testing.T) {
	// A nil instruments value must be safe to record against.
	var in *instruments
	assert.NotPanics(t, func() {
		in.recordEmitted(context.Background(), LevelInfo)
		in.recordSuppressed(context.Background(), LevelDebug)
		in.recordTimer(context.Background(), "x", 0)
	})
}
