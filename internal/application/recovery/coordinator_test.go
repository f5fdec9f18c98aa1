package recovery

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"
	"time"

	"hellotutor/internal/application/common/logging"
	"hellotutor/internal/domain/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exitRecorder struct {
	calls []int
}

func (r *exitRecorder) Exit(code int) {
	r.calls = append(r.calls, code)
}

func newCoordinatorUnderTest(t *testing.T, opts ...Option) (*Coordinator, *exitRecorder, *bytes.Buffer) {
	t.Helper()
	stderr := &bytes.Buffer{}
	logger, err := logging.NewWithStreams(
		logging.Config{Level: logging.LevelDebug, Format: "json"},
		&bytes.Buffer{}, stderr,
	)
	require.NoError(t, err)

	factory := failure.NewFactory(failure.NewClassifier(logger), logger)
	recorder := &exitRecorder{}

	allOpts := append([]Option{
		WithExitFunc(recorder.Exit),
		WithGraceDelay(0),
	}, opts...)

	return NewCoordinator(factory, logger, allOpts...), recorder, stderr
}

func TestCoordinator_UnrecoverableFailureTerminates(t *testing.T) {
	coordinator, recorder, stderr := newCoordinatorUnderTest(t)

	coordinator.HandleProcessError(context.Background(), errors.New("boot failed"), logging.Fields{
		"operation": "serve",
	})

	require.Len(t, recorder.calls, 1, "exit collaborator invoked exactly once")
	assert.Equal(t, 1, recorder.calls[0], "exit code is non-zero")
	assert.Contains(t, stderr.String(), "Process-scope failure")
	assert.Contains(t, stderr.String(), "terminating process")
	assert.Contains(t, stderr.String(), "Troubleshooting guidance")
}

func TestCoordinator_RecoverableFailureReturnsControl(t *testing.T) {
	coordinator, recorder, stderr := newCoordinatorUnderTest(t)

	classified := coordinator.factory.NewError(
		context.Background(), "transient glitch", failure.CategoryValidation, 400, failure.Guidance{})

	coordinator.HandleProcessError(context.Background(), classified, nil)

	assert.Empty(t, recorder.calls, "recoverable failures never exit")
	assert.Contains(t, stderr.String(), "degraded state")
}

func TestCoordinator_ReusesClassifiedValue(t *testing.T) {
	coordinator, recorder, stderr := newCoordinatorUnderTest(t)

	classified := coordinator.factory.NewError(
		context.Background(), "already classified", failure.CategoryRequest, 400, failure.Guidance{})
	wrapped := fmt.Errorf("startup: %w", classified)

	coordinator.HandleProcessError(context.Background(), wrapped, nil)

	assert.Empty(t, recorder.calls, "the wrapped value's Request classification is honored")
	assert.Contains(t, stderr.String(), `"category":"Request"`)
}

func TestCoordinator_UnrecoverableCodeForcesTermination(t *testing.T) {
	coordinator, recorder, _ := newCoordinatorUnderTest(t)

	coordinator.HandleProcessError(context.Background(),
		fmt.Errorf("listen tcp :8080: %w", syscall.EADDRINUSE), nil)

	require.Len(t, recorder.calls, 1)
	assert.Equal(t, 1, recorder.calls[0])
}

func TestCoordinator_GraceDelayElapsesBeforeExit(t *testing.T) {
	var slept []time.Duration
	coordinator, recorder, _ := newCoordinatorUnderTest(t, WithGraceDelay(250*time.Millisecond))
	coordinator.sleep = func(d time.Duration) { slept = append(slept, d) }

	coordinator.HandleProcessError(context.Background(), errors.New("fatal"), nil)

	require.Len(t, recorder.calls, 1)
	require.Len(t, slept, 1)
	assert.Equal(t, 250*time.Millisecond, slept[0])
}

func TestCoordinator_NilFailureTerminates(t *testing.T) {
	// A nil process failure still lands here as a Server-category fallback.
	coordinator, recorder, _ := newCoordinatorUnderTest(t)

	coordinator.HandleProcessError(context.Background(), nil, nil)

	require.Len(t, recorder.calls, 1)
	assert.Equal(t, 1, recorder.calls[0])
}

func TestCoordinator_InternalPanicStillTerminates(t *testing.T) {
	coordinator, recorder, stderr := newCoordinatorUnderTest(t)

	// Force an internal panic by breaking the factory dependency.
	coordinator.factory = nil

	assert.NotPanics(t, func() {
		coordinator.HandleProcessError(context.Background(), errors.New("x"), nil)
	})

	require.Len(t, recorder.calls, 1, "internal failures still terminate")
	assert.Contains(t, stderr.String(), "failed internally")
}
