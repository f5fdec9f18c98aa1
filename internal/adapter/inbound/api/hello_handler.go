package api

import (
	"net/http"
	"time"

	"hellotutor/internal/application/common/logging"
	"hellotutor/internal/domain/failure"
	"hellotutor/internal/port/inbound"
)

// HelloHandler handles the /hello routes.
type HelloHandler struct {
	greetingService inbound.GreetingService
	errorHandler    ErrorHandler
	logger          logging.Logger
}

// NewHelloHandler creates a HelloHandler.
func NewHelloHandler(greetingService inbound.GreetingService, errorHandler ErrorHandler, logger logging.Logger) *HelloHandler {
	return &HelloHandler{
		greetingService: greetingService,
		errorHandler:    errorHandler,
		logger:          logger.WithComponent("hello-handler"),
	}
}

// GetHello handles GET /hello and GET /hello/{name}.
func (h *HelloHandler) GetHello(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		h.logger.LogPerformance(r.Context(), "hello_request", time.Since(start), logging.Fields{
			"path": r.URL.Path,
		})
	}()

	name := r.PathValue("name")

	response, err := h.greetingService.Greet(r.Context(), name)
	if err != nil {
		h.errorHandler.HandleError(w, r, err, failure.CategoryValidation)
		return
	}

	if writeErr := WriteJSON(w, http.StatusOK, response); writeErr != nil {
		h.errorHandler.HandleError(w, r, writeErr, failure.CategoryResponse)
	}
}
