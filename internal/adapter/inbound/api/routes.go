package api

import (
	"fmt"
	"net/http"
)

// RouteRegistry manages HTTP route registration using Go 1.22+ ServeMux
// method patterns.
type RouteRegistry struct {
	mux      *http.ServeMux
	patterns []string
}

// NewRouteRegistry creates a RouteRegistry.
func NewRouteRegistry() *RouteRegistry {
	return &RouteRegistry{
		mux: http.NewServeMux(),
	}
}

// RegisterAPIRoutes registers all routes with their handlers.
func (r *RouteRegistry) RegisterAPIRoutes(helloHandler *HelloHandler, healthHandler *HealthHandler) {
	r.register("GET /hello", http.HandlerFunc(helloHandler.GetHello))
	r.register("GET /hello/{name}", http.HandlerFunc(helloHandler.GetHello))
	r.register("GET /health", http.HandlerFunc(healthHandler.GetHealth))
}

func (r *RouteRegistry) register(pattern string, handler http.Handler) {
	// ServeMux panics on conflicting patterns; registration happens once
	// at startup so that is the right failure mode.
	r.mux.Handle(pattern, handler)
	r.patterns = append(r.patterns, pattern)
}

// Patterns returns the registered route patterns, for startup logging.
func (r *RouteRegistry) Patterns() []string {
	out := make([]string, len(r.patterns))
	copy(out, r.patterns)
	return out
}

// Handler returns the configured ServeMux.
func (r *RouteRegistry) Handler() http.Handler {
	return r.mux
}

// String implements fmt.Stringer for debug output.
func (r *RouteRegistry) String() string {
	return fmt.Sprintf("RouteRegistry(%d routes)", len(r.patterns))
}
