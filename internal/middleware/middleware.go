// Package middleware holds global and route-specific middleware.
//
// Middleware intercepts requests to handle cross-cutting concerns:
// authentication (Clerk), request logging, CORS, request correlation,
// rate limiting, tracing, and panic recovery. Handlers never deal
// with any of these directly.
package middleware
