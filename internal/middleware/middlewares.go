package middleware

import (
	"github.com/chanakya-dev/campustore/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middlewares groups all middleware components used by the HTTP
// server, so router setup receives one wired object instead of
// constructing middleware ad hoc.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers,
	// and the global error handler.
	Global *GlobalMiddlewares

	// Auth provides Clerk-based authentication and attaches user
	// identity to the request context.
	Auth *AuthMiddleware

	// ContextEnhancer enriches each request with a request-scoped
	// logger carrying correlation fields.
	ContextEnhancer *ContextEnhancer

	// Tracing provides New Relic middleware and attribute helpers.
	Tracing *TracingMiddleware

	// RateLimit enforces the per-IP request cap over Redis.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components from the
// application container. When New Relic is not configured, nrApp is
// nil and tracing middleware degrades to a no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Auth:            NewAuthMiddleware(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
