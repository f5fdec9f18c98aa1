// Package logging implements the structured log emitter used by every
// component of the service. Emission is level-filtered before any formatting
// work happens, enriched with correlation and component context, and written
// to a per-level console stream. A formatting or write failure degrades to a
// minimal unformatted line; emitting never panics and never returns an error.
package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
)

// Level is the ordinal severity of a log entry.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the level tag used in formatted output.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a configuration string into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %q", s)
	}
}

// Fields represents structured logging context attached to a single entry.
type Fields map[string]interface{}

// DurationField is the reserved Fields key carrying an operation duration.
// Its value is rendered as a duration suffix instead of ordinary metadata.
const DurationField = "duration"

// Logger defines the structured application logging contract.
type Logger interface {
	Debug(ctx context.Context, message string, fields Fields)
	Info(ctx context.Context, message string, fields Fields)
	Warn(ctx context.Context, message string, fields Fields)
	Error(ctx context.Context, message string, fields Fields)
	ErrorWithError(ctx context.Context, err error, message string, fields Fields)
	LogPerformance(ctx context.Context, operation string, duration time.Duration, fields Fields)
	WithComponent(component string) Logger

	// StartTimer begins a labeled timing measurement and returns its start
	// instant. Starting a label that is already running logs a warning and
	// returns the existing timer's start instant.
	StartTimer(label string) time.Time
	// EndTimer finishes a labeled measurement and returns the elapsed
	// duration. Ending a label that was never started logs a warning and
	// returns zero.
	EndTimer(label string) time.Duration
}

// Config represents logger configuration.
type Config struct {
	Level  Level
	Format string // json, text
	// TutorialPrefix is prepended to text-format lines when non-empty.
	TutorialPrefix string
	// Now overrides the clock, for tests. Defaults to time.Now, whose
	// readings carry both the wall clock (timestamps) and the monotonic
	// clock (timer durations).
	Now func() time.Time
}

// Entry is the serialized shape of one log record.
type Entry struct {
	Timestamp     string                 `json:"timestamp"`
	Level         string                 `json:"level"`
	Message       string                 `json:"message"`
	CorrelationID string                 `json:"correlation_id,omitempty"`
	Component     string                 `json:"component,omitempty"`
	Operation     string                 `json:"operation,omitempty"`
	DurationMS    float64                `json:"duration_ms,omitempty"`
	Error         string                 `json:"error,omitempty"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}

type appLogger struct {
	config    Config
	component string
	stdout    io.Writer
	stderr    io.Writer
	timers    *timerRegistry
	metrics   *instruments
	now       func() time.Time
}

// New creates a logger writing to the process console streams: debug and
// info entries go to stdout, warn and error entries to stderr.
func New(config Config) (Logger, error) {
	return NewWithStreams(config, os.Stdout, os.Stderr)
}

// NewWithStreams creates a logger with explicit output streams. Tests pass
// buffers here to assert on emitted output.
func NewWithStreams(config Config, stdout, stderr io.Writer) (Logger, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}

	now := config.Now
	if now == nil {
		now = time.Now
	}

	l := &appLogger{
		config:  config,
		stdout:  stdout,
		stderr:  stderr,
		metrics: newInstruments(),
		now:     now,
	}
	l.timers = newTimerRegistry(l)
	return l, nil
}

func validateConfig(config Config) error {
	if config.Level < LevelDebug || config.Level > LevelError {
		return fmt.Errorf("invalid log level ordinal: %d", int(config.Level))
	}
	switch config.Format {
	case "json", "text":
		return nil
	default:
		return fmt.Errorf("invalid log format: %q", config.Format)
	}
}

// WithComponent returns a logger that stamps a component name on every
// entry. The clone shares the timer registry and streams of its parent.
func (l *appLogger) WithComponent(component string) Logger {
	clone := *l
	clone.component = component
	return &clone
}

func (l *appLogger) Debug(ctx context.Context, message string, fields Fields) {
	l.emit(ctx, LevelDebug, message, "", fields)
}

func (l *appLogger) Info(ctx context.Context, message string, fields Fields) {
	l.emit(ctx, LevelInfo, message, "", fields)
}

func (l *appLogger) Warn(ctx context.Context, message string, fields Fields) {
	l.emit(ctx, LevelWarn, message, "", fields)
}

func (l *appLogger) Error(ctx context.Context, message string, fields Fields) {
	l.emit(ctx, LevelError, message, "", fields)
}

func (l *appLogger) ErrorWithError(ctx context.Context, err error, message string, fields Fields) {
	errStr := ""
	if err != nil {
		errStr = err.Error()
	}
	l.emit(ctx, LevelError, message, errStr, fields)
}

// LogPerformance logs a completed operation with its duration.
func (l *appLogger) LogPerformance(ctx context.Context, operation string, duration time.Duration, fields Fields) {
	merged := make(Fields, len(fields)+2)
	for k, v := range fields {
		merged[k] = v
	}
	merged["operation"] = operation
	merged[DurationField] = duration
	l.emit(ctx, LevelInfo, fmt.Sprintf("Performance metrics for %s", operation), "", merged)
}

// emit is the single funnel for all log output. Entries below the configured
// threshold are dropped before any formatting work is performed.
func (l *appLogger) emit(ctx context.Context, level Level, message, errStr string, fields Fields) {
	if level < l.config.Level {
		l.metrics.recordSuppressed(ctx, level)
		return
	}

	stream := l.streamFor(level)

	defer func() {
		// Emission must never propagate a failure to the caller.
		if r := recover(); r != nil {
			l.fallbackWrite(stream, level, message)
		}
	}()

	entry := l.buildEntry(ctx, level, message, errStr, fields)

	var err error
	if l.config.Format == "json" {
		err = writeJSONEntry(stream, entry)
	} else {
		err = l.writeTextEntry(stream, entry)
	}
	if err != nil {
		l.fallbackWrite(stream, level, message)
		return
	}

	l.metrics.recordEmitted(ctx, level)
}

// streamFor maps levels to console streams: diagnostics chatter stays on
// stdout, actionable entries go to stderr. Ordering is FIFO per stream only.
func (l *appLogger) streamFor(level Level) io.Writer {
	if level >= LevelWarn {
		return l.stderr
	}
	return l.stdout
}

func (l *appLogger) buildEntry(ctx context.Context, level Level, message, errStr string, fields Fields) *Entry {
	entry := &Entry{
		Timestamp:     l.now().UTC().Format(time.RFC3339Nano),
		Level:         level.String(),
		Message:       message,
		CorrelationID: CorrelationIDFromContext(ctx),
		Component:     l.component,
		Error:         errStr,
	}

	for key, value := range fields {
		switch key {
		case "operation":
			if operation, ok := value.(string); ok {
				entry.Operation = operation
				continue
			}
		case DurationField:
			if d, ok := durationValue(value); ok {
				entry.DurationMS = d
				continue
			}
		}
		if entry.Metadata == nil {
			entry.Metadata = make(map[string]interface{}, len(fields))
		}
		entry.Metadata[key] = value
	}

	return entry
}

func durationValue(v interface{}) (float64, bool) {
	switch d := v.(type) {
	case time.Duration:
		return float64(d) / float64(time.Millisecond), true
	case float64:
		return d, true
	case int:
		return float64(d), true
	case int64:
		return float64(d), true
	default:
		return 0, false
	}
}

func writeJSONEntry(stream io.Writer, entry *Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = stream.Write(data)
	return err
}

// writeTextEntry renders: timestamp, level tag, optional tutorial prefix,
// message, sorted metadata and a trailing duration suffix.
func (l *appLogger) writeTextEntry(stream io.Writer, entry *Entry) error {
	var b strings.Builder
	b.WriteString(entry.Timestamp)
	b.WriteString(" ")
	b.WriteString(entry.Level)
	if l.config.TutorialPrefix != "" {
		b.WriteString(" [")
		b.WriteString(l.config.TutorialPrefix)
		b.WriteString("]")
	}
	if entry.Component != "" {
		b.WriteString(" ")
		b.WriteString(entry.Component)
		b.WriteString(":")
	}
	b.WriteString(" ")
	b.WriteString(entry.Message)

	if entry.Error != "" {
		b.WriteString(" error=")
		b.WriteString(fmt.Sprintf("%q", entry.Error))
	}
	if entry.CorrelationID != "" {
		b.WriteString(" correlation_id=")
		b.WriteString(entry.CorrelationID)
	}
	if entry.Operation != "" {
		b.WriteString(" operation=")
		b.WriteString(entry.Operation)
	}

	if len(entry.Metadata) > 0 {
		keys := make([]string, 0, len(entry.Metadata))
		for k := range entry.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf(" %s=%v", k, entry.Metadata[k]))
		}
	}

	if entry.DurationMS != 0 {
		b.WriteString(fmt.Sprintf(" (%.3fms)", entry.DurationMS))
	}

	_, err := fmt.Fprintln(stream, b.String())
	return err
}

// fallbackWrite is the last-resort path when formatting or writing failed:
// a minimal unformatted line, errors ignored.
func (l *appLogger) fallbackWrite(stream io.Writer, level Level, message string) {
	if stream == nil {
		return
	}
	_, _ = fmt.Fprintln(stream, level.String()+" "+message)
}
