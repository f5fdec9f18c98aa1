package api

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"hellotutor/internal/application/dto"
	"hellotutor/internal/config"
	"hellotutor/internal/domain/failure"
)

// maxStackFrames bounds the debug block's stack trace.
const maxStackFrames = 10

// recoverySuggestions are the generic remediation hints attached to every
// recoverable failure.
var recoverySuggestions = []string{
	"Retry the request after correcting the reported problem",
	"Check the service logs for the correlated error entry",
	"Consult the educational block for category-specific guidance",
}

// FormatOptions selects which optional envelope blocks are produced.
type FormatOptions struct {
	// Educational includes the guidance bundle in the envelope.
	Educational bool
	// Environment is the configured runtime class; debug blocks are only
	// produced for development-like environments.
	Environment string
}

// FormatForResponse converts a classified error into its wire envelope.
// Pure: no logging, no mutation of the record; callers log separately.
func FormatForResponse(record *failure.Error, opts FormatOptions) dto.ErrorEnvelope {
	code := record.Category().Code()

	envelope := dto.ErrorEnvelope{
		Error:       true,
		Status:      record.StatusCode(),
		Type:        code,
		Message:     record.Message(),
		Timestamp:   record.Timestamp().UTC().Format(time.RFC3339),
		Recoverable: record.Recoverable(),
		HTTP: dto.HTTPMetadata{
			StatusCode: record.StatusCode(),
			StatusText: http.StatusText(record.StatusCode()),
			Headers: map[string]string{
				"Content-Type": "application/json",
				"X-Error-Type": code,
			},
		},
	}

	if guidance := record.Guidance(); opts.Educational && !guidance.IsZero() {
		envelope.Educational = &dto.EducationalBlock{
			Troubleshooting: guidance.Troubleshooting,
			DebuggingSteps:  guidance.DebuggingSteps,
			LearningTips:    guidance.LearningTips,
			RelatedConcepts: guidance.RelatedConcepts,
		}
	}

	if developmentLike(opts.Environment) {
		envelope.Debug = &dto.DebugBlock{
			ErrorName:  errorName(record.Category()),
			StackTrace: stackFrames(maxStackFrames),
			// Recomputed from the category table, not copied from the
			// record: an explicit override on the record must not hide
			// the category's baseline verdict from debugging eyes.
			Recoverable: failure.BaselineRecoverable(record.Category()),
		}
	}

	if record.Recoverable() {
		envelope.Recovery = &dto.RecoveryBlock{
			Recoverable: true,
			Suggestions: recoverySuggestions,
		}
	}

	return envelope
}

func developmentLike(environment string) bool {
	return environment == config.EnvDevelopment || environment == config.EnvEducational
}

func errorName(c failure.Category) string {
	return string(c) + "Error"
}

// stackFrames captures up to limit frames of the current call stack,
// skipping the formatter itself.
func stackFrames(limit int) []string {
	pcs := make([]uintptr, limit)
	// Skip runtime.Callers, stackFrames and FormatForResponse.
	n := runtime.Callers(3, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	out := make([]string, 0, n)
	for {
		frame, more := frames.Next()
		out = append(out, fmt.Sprintf("%s (%s:%d)", frame.Function, frame.File, frame.Line))
		if !more || len(out) >= limit {
			break
		}
	}
	return out
}
