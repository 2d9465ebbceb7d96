// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request ids, request logging, metrics, CORS,
// rate limiting, tracing and panic recovery. It also owns the
// global error handler that turns every error into a response.
package middleware
