// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/channeld/internal/handler"
	"github.com/deppfellow/channeld/internal/middleware"
	"github.com/deppfellow/channeld/internal/server"
)

// NewRouter builds the Echo instance with the middleware chain and all routes.
//
// Middleware order, outermost first:
//
//	metrics -> rate limit -> CORS -> secure headers -> request id ->
//	New Relic -> tracing attributes -> context logger -> request log -> recover
//
// Every error, including panics turned into errors by recover, reaches
// GlobalErrorHandler exactly once, from the metrics middleware.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(middlewares.Global.Metrics())

	if middlewares.RateLimit.Enabled() {
		router.Use(middlewares.RateLimit.Limiter())
	}

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerChannelRoutes(router, h)

	return router
}
