package logging

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// instruments carries the OpenTelemetry counters for the emitter itself.
// Instrument creation failures leave the individual instrument nil; every
// record call is nil-guarded so the logger keeps working without metrics.
type instruments struct {
	emitted       metric.Int64Counter
	suppressed    metric.Int64Counter
	timerDuration metric.Float64Histogram
}

func newInstruments() *instruments {
	meter := otel.Meter("hellotutor/logging")
	in := &instruments{}

	var err error
	in.emitted, err = meter.Int64Counter(
		"log_entries_emitted_total",
		metric.WithDescription("Log entries written to a console stream"),
	)
	if err != nil {
		in.emitted = nil
	}

	in.suppressed, err = meter.Int64Counter(
		"log_entries_suppressed_total",
		metric.WithDescription("Log entries dropped by the level threshold"),
	)
	if err != nil {
		in.suppressed = nil
	}

	in.timerDuration, err = meter.Float64Histogram(
		"log_timer_duration_seconds",
		metric.WithDescription("Durations measured by labeled timers"),
	)
	if err != nil {
		in.timerDuration = nil
	}

	return in
}

func (in *instruments) recordEmitted(ctx context.Context, level Level) {
	if in == nil || in.emitted == nil {
		return
	}
	in.emitted.Add(ctx, 1, metric.WithAttributes(attribute.String("level", level.String())))
}

func (in *instruments) recordSuppressed(ctx context.Context, level Level) {
	if in == nil || in.suppressed == nil {
		return
	}
	in.suppressed.Add(ctx, 1, metric.WithAttributes(attribute.String("level", level.String())))
}

func (in *instruments) recordTimer(ctx context.Context, label string, elapsed time.Duration) {
	if in == nil || in.timerDuration == nil {
		return
	}
	in.timerDuration.Record(ctx, elapsed.Seconds(),
		metric.WithAttributes(attribute.String("label", label)))
}
