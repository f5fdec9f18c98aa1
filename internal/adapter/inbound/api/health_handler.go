package api

import (
	"net/http"

	"hellotutor/internal/domain/failure"
	"hellotutor/internal/port/inbound"
)

// HealthHandler handles GET /health.
type HealthHandler struct {
	healthService inbound.HealthService
	errorHandler  ErrorHandler
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(healthService inbound.HealthService, errorHandler ErrorHandler) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
		errorHandler:  errorHandler,
	}
}

// GetHealth handles GET /health.
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	response, err := h.healthService.GetHealth(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err, failure.CategoryServer)
		return
	}

	statusCode := http.StatusOK
	if response.Status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	if writeErr := WriteJSON(w, statusCode, response); writeErr != nil {
		h.errorHandler.HandleError(w, r, writeErr, failure.CategoryResponse)
	}
}
