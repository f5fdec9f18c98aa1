package api

import (
	"fmt"
	"net/http"
	"time"

	"hellotutor/internal/application/common/logging"
	"hellotutor/internal/domain/failure"
)

// MiddlewareFunc is the middleware function signature.
type MiddlewareFunc func(http.Handler) http.Handler

// Chain composes middlewares outermost-first around handler.
func Chain(handler http.Handler, middlewares ...MiddlewareFunc) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// NewLoggingMiddleware stamps every request with a correlation ID (taken
// from the X-Correlation-ID header when the client sent one) and logs the
// completed request with method, path, status and duration.
func NewLoggingMiddleware(logger logging.Logger) MiddlewareFunc {
	requestLogger := logger.WithComponent("http")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := r.Context()
			if id := r.Header.Get("X-Correlation-ID"); id != "" {
				ctx = logging.WithCorrelationID(ctx, id)
			}
			var correlationID string
			ctx, correlationID = logging.EnsureCorrelationID(ctx)
			r = r.WithContext(ctx)

			w.Header().Set("X-Correlation-ID", correlationID)

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			requestLogger.Info(ctx, "HTTP request completed", logging.Fields{
				"method":              r.Method,
				"path":                r.URL.Path,
				"status":              wrapped.statusCode,
				logging.DurationField: time.Since(start),
				"remote_addr":         r.RemoteAddr,
			})
		})
	}
}

// NewRecoveryMiddleware converts handler panics into Server error envelopes.
// Request-scoped failures must never take the process down; a panicking
// handler yields a 500 envelope like any other server failure.
func NewRecoveryMiddleware(errorHandler ErrorHandler, logger logging.Logger) MiddlewareFunc {
	panicLogger := logger.WithComponent("http")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					panicLogger.Error(r.Context(), "Panic recovered in HTTP handler", logging.Fields{
						"method": r.Method,
						"path":   r.URL.Path,
						"panic":  fmt.Sprintf("%v", rec),
					})
					errorHandler.HandleError(w, r, fmt.Errorf("panic in handler: %v", rec), failure.CategoryServer)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
