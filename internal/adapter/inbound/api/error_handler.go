// Package api provides the HTTP inbound adapter: routes, handlers,
// middleware and the conversion of classified failures into wire envelopes.
// Request-scoped failures never crash the process; every one of them leaves
// this package as a JSON ErrorEnvelope.
package api

import (
	"net/http"

	"hellotutor/internal/application/common/logging"
	"hellotutor/internal/application/dto"
	"hellotutor/internal/domain/failure"
)

// ErrorHandler converts failures raised by handlers into HTTP responses.
type ErrorHandler interface {
	HandleError(w http.ResponseWriter, r *http.Request, err error, hint failure.Category)
}

// DefaultErrorHandler classifies the error, logs it and writes the envelope
// produced by the response formatter.
type DefaultErrorHandler struct {
	factory *failure.Factory
	logger  logging.Logger
	options FormatOptions
}

// NewDefaultErrorHandler creates a DefaultErrorHandler.
func NewDefaultErrorHandler(factory *failure.Factory, logger logging.Logger, options FormatOptions) *DefaultErrorHandler {
	return &DefaultErrorHandler{
		factory: factory,
		logger:  logger.WithComponent("error-handler"),
		options: options,
	}
}

// HandleError classifies err under the given hint, logs it with request
// context and writes the formatted envelope. Logging happens here because
// the formatter itself is pure.
func (h *DefaultErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error, hint failure.Category) {
	record := h.factory.FromError(r.Context(), err, hint)

	h.logger.ErrorWithError(r.Context(), err, "Request failed", logging.Fields{
		"method":      r.Method,
		"path":        r.URL.Path,
		"category":    string(record.Category()),
		"status":      record.StatusCode(),
		"recoverable": record.Recoverable(),
	})

	envelope := FormatForResponse(record, h.options)
	writeEnvelope(w, r, envelope)
}

// writeEnvelope writes the envelope with its HTTP metadata applied. A JSON
// encoding failure falls back to a plain-text 500; at that point nothing
// richer can be produced.
func writeEnvelope(w http.ResponseWriter, r *http.Request, envelope dto.ErrorEnvelope) {
	for key, value := range envelope.HTTP.Headers {
		w.Header().Set(key, value)
	}
	if correlationID := logging.CorrelationIDFromContext(r.Context()); correlationID != "" {
		w.Header().Set("X-Correlation-ID", correlationID)
	}

	if err := WriteJSON(w, envelope.HTTP.StatusCode, envelope); err != nil {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("Internal Server Error"))
	}
}
