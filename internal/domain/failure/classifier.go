package failure

import (
	"context"
	"errors"
	"strings"
	"syscall"

	"hellotutor/internal/application/common/logging"
)

// Classification is the outcome of classifying a raw failure.
type Classification struct {
	Category    Category
	Recoverable bool
}

// Classifier assigns a category to a raw failure and decides whether the
// hosting process may continue running afterwards.
type Classifier struct {
	logger logging.Logger
}

// NewClassifier creates a Classifier that reports anomalous inputs through
// the given logger.
func NewClassifier(logger logging.Logger) *Classifier {
	return &Classifier{logger: logger.WithComponent("classifier")}
}

// unrecoverableErrnos are failure codes that force non-recoverability
// regardless of category: the process state after them is not trustworthy.
var unrecoverableErrnos = []error{
	syscall.EADDRINUSE, // address already in use
	syscall.EACCES,     // permission denied
	syscall.EPERM,      // permission denied
	syscall.ENOMEM,     // out of memory
}

// unrecoverablePatterns are message fragments that mark a failure as
// unrecoverable when no structured code is available. Matched
// case-insensitively.
var unrecoverablePatterns = []string{
	"address already in use",
	"permission denied",
	"out of memory",
	"module not found",
	"cannot find module",
	"cannot find package",
	"stack overflow",
	"call stack size exceeded",
	"syntax error",
	"undefined reference",
	"is not defined",
}

// Classify assigns a category and a recoverability verdict to rawFailure.
// An absent or invalid hint falls back to Server with a warning log. The
// baseline category table decides recoverability unless the failure carries
// a recognized unrecoverable code or message pattern, which forces the
// verdict to false.
func (c *Classifier) Classify(ctx context.Context, rawFailure error, hint Category) Classification {
	category := hint
	if !category.Valid() {
		c.logger.Warn(ctx, "Invalid or missing category hint, defaulting to Server", logging.Fields{
			"hint": string(hint),
		})
		category = CategoryServer
	}

	recoverable := BaselineRecoverable(category)
	if recoverable && isUnrecoverableFailure(rawFailure) {
		recoverable = false
	}

	return Classification{Category: category, Recoverable: recoverable}
}

// isUnrecoverableFailure checks the structured code first, then the message
// patterns. The override only ever turns a recoverable verdict off.
func isUnrecoverableFailure(err error) bool {
	if err == nil {
		return false
	}
	for _, errno := range unrecoverableErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}
	message := strings.ToLower(err.Error())
	for _, pattern := range unrecoverablePatterns {
		if strings.Contains(message, pattern) {
			return true
		}
	}
	return false
}
