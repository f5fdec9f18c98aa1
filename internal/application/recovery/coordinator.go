// Package recovery orchestrates process-scope failures: classify, log, then
// either terminate the process or hand control back to a degraded caller.
package recovery

import (
	"context"
	"os"
	"time"

	"hellotutor/internal/application/common/logging"
	"hellotutor/internal/domain/failure"
)

// ExitFunc is the external process-termination collaborator. The default is
// os.Exit; tests inject a recorder.
type ExitFunc func(code int)

// defaultGraceDelay bounds how long termination waits for buffered log
// writes. Best effort only, not an ordering guarantee.
const defaultGraceDelay = 100 * time.Millisecond

const exitCodeFailure = 1

// Coordinator is the process-scope failure handler. Request-scoped failures
// never come here; they become response envelopes instead.
type Coordinator struct {
	factory    *failure.Factory
	logger     logging.Logger
	exit       ExitFunc
	graceDelay time.Duration
	sleep      func(time.Duration)
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithExitFunc replaces the process-termination collaborator.
func WithExitFunc(exit ExitFunc) Option {
	return func(c *Coordinator) { c.exit = exit }
}

// WithGraceDelay sets the bounded delay before termination.
func WithGraceDelay(d time.Duration) Option {
	return func(c *Coordinator) { c.graceDelay = d }
}

// NewCoordinator creates a Coordinator. By default it terminates through
// os.Exit after a short grace delay.
func NewCoordinator(factory *failure.Factory, logger logging.Logger, opts ...Option) *Coordinator {
	c := &Coordinator{
		factory:    factory,
		logger:     logger.WithComponent("recovery"),
		exit:       os.Exit,
		graceDelay: defaultGraceDelay,
		sleep:      time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HandleProcessError classifies rawFailure (reusing an already classified
// value when one is passed), logs it with full context, and decides the
// terminal outcome: non-recoverable failures terminate the process with a
// non-zero exit code after the grace delay, recoverable ones log a degraded
// state warning and return control to the caller.
//
// Any internal panic during handling is caught, logged and treated as
// non-recoverable; the coordinator never leaves the process in an undefined
// state.
func (c *Coordinator) HandleProcessError(ctx context.Context, rawFailure error, fields logging.Fields) {
	terminated := false
	defer func() {
		if r := recover(); r != nil && !terminated {
			c.logger.Error(ctx, "Recovery coordinator failed internally, forcing termination", logging.Fields{
				"panic": r,
			})
			c.terminate(ctx, nil)
		}
	}()

	record := c.factory.FromError(ctx, rawFailure, failure.CategoryServer)

	logFields := make(logging.Fields, len(fields)+3)
	for k, v := range fields {
		logFields[k] = v
	}
	logFields["category"] = string(record.Category())
	logFields["status"] = record.StatusCode()
	logFields["recoverable"] = record.Recoverable()
	c.logger.ErrorWithError(ctx, rawFailure, "Process-scope failure", logFields)

	if record.Recoverable() {
		c.logger.Warn(ctx, "Continuing in degraded state after recoverable failure", logging.Fields{
			"category": string(record.Category()),
		})
		return
	}

	terminated = true
	c.terminate(ctx, record)
}

// terminate logs the terminal notice and troubleshooting guidance, waits out
// the grace delay and invokes the exit collaborator exactly once.
func (c *Coordinator) terminate(ctx context.Context, record *failure.Error) {
	c.logger.Error(ctx, "Unrecoverable failure, terminating process", logging.Fields{
		"exit_code":   exitCodeFailure,
		"grace_delay": c.graceDelay.String(),
	})

	if record != nil {
		if guidance := record.Guidance(); !guidance.IsZero() {
			c.logger.Error(ctx, "Troubleshooting guidance", logging.Fields{
				"troubleshooting": guidance.Troubleshooting,
				"debugging_steps": guidance.DebuggingSteps,
			})
		}
	}

	c.sleep(c.graceDelay)
	c.exit(exitCodeFailure)
}
