package failure

import (
	"context"
	"errors"
	"time"

	"hellotutor/internal/application/common/logging"
)

// FallbackMessage is substituted when an error is constructed with an empty
// message.
const FallbackMessage = "An error occurred (no message provided)"

const defaultStatusCode = 500

// Factory builds validated Error values. Invalid inputs never abort
// construction: they are replaced with safe defaults and reported through
// warning logs so the anomaly stays traceable.
type Factory struct {
	classifier *Classifier
	logger     logging.Logger
	// verbose emits a debug entry for every constructed error.
	verbose bool
	now     func() time.Time
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithVerboseCreation enables a debug-level log entry on every construction.
func WithVerboseCreation(verbose bool) FactoryOption {
	return func(f *Factory) { f.verbose = verbose }
}

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) FactoryOption {
	return func(f *Factory) { f.now = now }
}

// NewFactory creates an error factory backed by the given classifier.
func NewFactory(classifier *Classifier, logger logging.Logger, opts ...FactoryOption) *Factory {
	f := &Factory{
		classifier: classifier,
		logger:     logger.WithComponent("error-factory"),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewError builds an Error from the given inputs. The message falls back to
// FallbackMessage when empty, the category to Server and the status code to
// 500 when out of the enumerated/valid range; each substitution logs a
// warning carrying the rejected value. Guidance starts from the category
// template with the overrides merged on top, and recoverability comes from
// the classifier.
func (f *Factory) NewError(ctx context.Context, message string, category Category, statusCode int, overrides Guidance) *Error {
	if message == "" {
		message = FallbackMessage
	}

	if !category.Valid() {
		f.logger.Warn(ctx, "Invalid error category, substituting Server", logging.Fields{
			"invalid_category": string(category),
		})
		category = CategoryServer
	}

	if statusCode < 100 || statusCode > 599 {
		f.logger.Warn(ctx, "Status code out of range, substituting 500", logging.Fields{
			"invalid_status": statusCode,
		})
		statusCode = defaultStatusCode
	}

	classification := f.classifier.Classify(ctx, nil, category)

	err := &Error{
		message:     message,
		category:    category,
		statusCode:  statusCode,
		timestamp:   f.now(),
		recoverable: classification.Recoverable,
		guidance:    TemplateFor(category).Merge(overrides),
	}

	if f.verbose {
		f.logger.Debug(ctx, "Constructed error value", logging.Fields{
			"category":    string(category),
			"status":      statusCode,
			"recoverable": err.recoverable,
		})
	}

	return err
}

// FromError wraps an arbitrary Go error into a classified Error. Already
// classified values pass through unchanged; everything else is classified
// under the hint and built with the category's default status code.
func (f *Factory) FromError(ctx context.Context, rawFailure error, hint Category) *Error {
	if rawFailure == nil {
		return f.NewError(ctx, "", hint, statusFor(hint), Guidance{})
	}

	var classified *Error
	if errors.As(rawFailure, &classified) {
		return classified
	}

	classification := f.classifier.Classify(ctx, rawFailure, hint)
	err := f.NewError(ctx, rawFailure.Error(), classification.Category, statusFor(classification.Category), Guidance{})
	if err.recoverable && !classification.Recoverable {
		err.OverrideRecoverable(false)
	}
	return err
}

// statusFor maps a category to its conventional HTTP status code.
func statusFor(c Category) int {
	switch c {
	case CategoryRequest, CategoryValidation:
		return 400
	case CategoryResponse, CategoryServer, CategoryConfiguration:
		return 500
	default:
		return defaultStatusCode
	}
}
