package service

import (
	"context"
	"time"

	"hellotutor/internal/application/dto"
)

// HealthService implements inbound.HealthService.
type HealthService struct {
	version string
	started time.Time
}

// NewHealthService creates a HealthService stamped with the build version.
func NewHealthService(version string) *HealthService {
	return &HealthService{
		version: version,
		started: time.Now(),
	}
}

// GetHealth reports process health. The service has no external
// dependencies, so liveness is the only signal.
func (s *HealthService) GetHealth(_ context.Context) (dto.HealthResponse, error) {
	return dto.HealthResponse{
		Status:        "healthy",
		Version:       s.version,
		UptimeSeconds: int64(time.Since(s.started).Seconds()),
	}, nil
}
