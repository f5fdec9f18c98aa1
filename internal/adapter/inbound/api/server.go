package api

import (
	"context"
	"errors"
	"net/http"

	"hellotutor/internal/application/common/logging"
	"hellotutor/internal/config"
)

// Server wraps the HTTP server with its configured handler chain.
type Server struct {
	config     *config.Config
	httpServer *http.Server
	logger     logging.Logger
}

// NewServer creates a Server serving handler on the configured address.
func NewServer(cfg *config.Config, handler http.Handler, logger logging.Logger) *Server {
	return &Server{
		config: cfg,
		httpServer: &http.Server{
			Addr:         cfg.API.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.API.ReadTimeout,
			WriteTimeout: cfg.API.WriteTimeout,
		},
		logger: logger.WithComponent("server"),
	}
}

// Start runs the server until Shutdown is called or the listener fails.
// A clean shutdown returns nil.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info(ctx, "HTTP server starting", logging.Fields{
		"addr":        s.httpServer.Addr,
		"environment": s.config.Diagnostics.Environment,
	})

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "HTTP server shutting down", nil)
	return s.httpServer.Shutdown(ctx)
}
