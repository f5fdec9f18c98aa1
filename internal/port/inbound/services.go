// Package inbound defines the driving ports of the application: the
// interfaces HTTP handlers call into.
package inbound

import (
	"context"

	"hellotutor/internal/application/dto"
)

// GreetingService produces greetings for the /hello route.
type GreetingService interface {
	Greet(ctx context.Context, name string) (dto.GreetingResponse, error)
}

// HealthService reports process liveness for the /health route.
type HealthService interface {
	GetHealth(ctx context.Context) (dto.HealthResponse, error)
}
