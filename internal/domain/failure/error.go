package failure

import "time"

// Error is a classified, guidance-enriched error value. All fields are set
// at construction and immutable afterwards, with one exception: callers may
// flip the recoverability verdict through OverrideRecoverable, the single
// explicit override path.
type Error struct {
	message     string
	category    Category
	statusCode  int
	timestamp   time.Time
	recoverable bool
	guidance    Guidance
}

// Error implements the error interface.
func (e *Error) Error() string { return e.message }

// Message returns the human-readable failure description.
func (e *Error) Message() string { return e.message }

// Category returns the classified failure kind.
func (e *Error) Category() Category { return e.category }

// StatusCode returns the HTTP status code associated with the failure.
func (e *Error) StatusCode() int { return e.statusCode }

// Timestamp returns the wall-clock instant of construction.
func (e *Error) Timestamp() time.Time { return e.timestamp }

// Recoverable reports whether the hosting process may continue after this
// failure.
func (e *Error) Recoverable() bool { return e.recoverable }

// Guidance returns the attached troubleshooting bundle. Bundles are value
// types; mutating the returned copy does not affect the error.
func (e *Error) Guidance() Guidance { return e.guidance }

// OverrideRecoverable is the explicit escape hatch for callers that know
// better than the classifier. Everything else about the value stays frozen.
func (e *Error) OverrideRecoverable(recoverable bool) {
	e.recoverable = recoverable
}
