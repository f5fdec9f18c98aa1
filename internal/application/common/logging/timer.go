package logging

import (
	"context"
	"sync"
	"time"
)

// timerRegistry tracks in-flight labeled timers. It is the only piece of
// shared mutable state in the logging package; the mutex exists because HTTP
// handlers run on multiple goroutines. Timers are never cancelled: an
// unmatched StartTimer leaks its entry until process exit. Known risk,
// kept deliberately observable rather than silently reaped.
type timerRegistry struct {
	mu     sync.Mutex
	active map[string]time.Time
	logger *appLogger
}

func newTimerRegistry(logger *appLogger) *timerRegistry {
	return &timerRegistry{
		active: make(map[string]time.Time),
		logger: logger,
	}
}

// StartTimer begins timing the given label. Starting a label that is already
// running is an idempotent no-op: it logs one warning and returns the start
// instant of the original timer.
func (l *appLogger) StartTimer(label string) time.Time {
	l.timers.mu.Lock()
	if start, ok := l.timers.active[label]; ok {
		l.timers.mu.Unlock()
		l.Warn(context.Background(), "Timer already running", Fields{"label": label})
		return start
	}
	start := l.now()
	l.timers.active[label] = start
	l.timers.mu.Unlock()
	return start
}

// EndTimer stops the labeled timer and returns the elapsed time, measured on
// the monotonic clock carried by the start instant. Ending a label that was
// never started logs a warning and returns zero.
func (l *appLogger) EndTimer(label string) time.Duration {
	l.timers.mu.Lock()
	start, ok := l.timers.active[label]
	if ok {
		delete(l.timers.active, label)
	}
	l.timers.mu.Unlock()

	if !ok {
		l.Warn(context.Background(), "Timer was never started", Fields{"label": label})
		return 0
	}

	elapsed := l.now().Sub(start)
	l.metrics.recordTimer(context.Background(), label, elapsed)
	return elapsed
}
