// Package service holds the application services behind the inbound ports.
package service

import (
	"context"
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"

	"hellotutor/internal/application/common/logging"
	"hellotutor/internal/application/dto"
	"hellotutor/internal/domain/failure"
)

const maxNameLength = 64

// GreetingService implements inbound.GreetingService. Invalid names become
// classified Validation failures so the route exercises the full diagnostic
// path instead of ad-hoc string errors.
type GreetingService struct {
	factory *failure.Factory
	logger  logging.Logger
	now     func() time.Time
}

// NewGreetingService creates a GreetingService.
func NewGreetingService(factory *failure.Factory, logger logging.Logger) *GreetingService {
	return &GreetingService{
		factory: factory,
		logger:  logger.WithComponent("greeting-service"),
		now:     time.Now,
	}
}

// Greet returns the greeting for name. An empty name greets the world; a
// name that is too long or contains non-printable runes yields a Validation
// failure built by the error factory.
func (s *GreetingService) Greet(ctx context.Context, name string) (dto.GreetingResponse, error) {
	if name == "" {
		name = "World"
	}

	if err := validateName(name); err != "" {
		return dto.GreetingResponse{}, s.factory.NewError(ctx, err, failure.CategoryValidation, 400, failure.Guidance{
			DebuggingSteps: []string{"Use a name of at most 64 printable characters"},
		})
	}

	s.logger.Debug(ctx, "Producing greeting", logging.Fields{"name": name})

	return dto.GreetingResponse{
		Message:   fmt.Sprintf("Hello, %s!", name),
		Timestamp: s.now().UTC().Format(time.RFC3339),
	}, nil
}

func validateName(name string) string {
	if utf8.RuneCountInString(name) > maxNameLength {
		return fmt.Sprintf("name must be at most %d characters", maxNameLength)
	}
	for _, r := range name {
		if !unicode.IsPrint(r) {
			return "name must contain only printable characters"
		}
	}
	return ""
}
