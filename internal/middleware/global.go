package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/channeld/internal/errs"
	"github.com/deppfellow/channeld/internal/metrics"
	"github.com/deppfellow/channeld/internal/server"
	"github.com/deppfellow/channeld/internal/sqlerr"
)

// GlobalMiddlewares groups "global" middleware and the global error handler.
//
// Middleware functions reach config and logging through *server.Server.
type GlobalMiddlewares struct {
	server *server.Server
}

// NewGlobalMiddlewares constructs the middleware bundle.
func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS returns Echo's CORS middleware configured by the server config.
// An empty origin list allows every origin.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// RequestLogger returns Echo's request logger middleware writing one
// structured "API" line per request, with severity based on the status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			// When a handler returns an error the final status is only known
			// once GlobalErrorHandler has run, so derive it from the error.
			// See https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
			if v.Error != nil {
				statusCode = statusOf(v.Error)
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover returns Echo's panic recovery middleware.
// Panics become errors and reach GlobalErrorHandler as a 500.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			GetLogger(c).Error().
				Err(err).
				Bytes("stack", stack).
				Msg("recovered from panic")
			return err
		},
	})
}

// Secure returns Echo's secure headers middleware.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// Metrics records request count and latency per route template.
//
// It must be the outermost middleware: it hands a returned error to the
// error handler itself, so the recorded status is the one the client got.
func (global *GlobalMiddlewares) Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			metrics.HTTPRequestsTotal.
				WithLabelValues(route, method, strconv.Itoa(c.Response().Status)).
				Inc()
			metrics.HTTPRequestDuration.
				WithLabelValues(route, method).
				Observe(time.Since(start).Seconds())

			return nil
		}
	}
}

// classify maps any error to the response the client receives.
//
//   - *errs.HTTPError (validation, NotFound, rate limit): unchanged
//   - *echo.HTTPError (unknown route, method not allowed, ...): same status
//   - anything else is a storage outcome and goes through sqlerr.HandleError
func classify(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if echoErr.Code == http.StatusNotFound {
			return errs.NewNotFoundError("Route not found")
		}
		message := ""
		if msg, ok := echoErr.Message.(string); ok {
			message = msg
		}
		return errs.FromStatus(echoErr.Code, message)
	}

	var classified *errs.HTTPError
	if !errors.As(sqlerr.HandleError(err), &classified) {
		return errs.NewInternalServerError()
	}
	return classified
}

func statusOf(err error) int {
	return classify(err).Status
}

// GlobalErrorHandler is the final error funnel for the entire HTTP server.
//
// Every error returned by a handler or middleware ends up here and is
// classified exactly once. The client gets the stable error body; the
// operator log keeps the original error with its database detail.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	httpErr := classify(err)
	logger := GetLogger(c)

	switch {
	case httpErr.Status >= http.StatusInternalServerError:
		logger.Error().Stack().
			Err(err).
			Int("status", httpErr.Status).
			Str("error_code", httpErr.Code).
			Msg(httpErr.Message)

	case httpErr.Status == http.StatusConflict:
		e := logger.Warn().
			Err(err).
			Int("status", httpErr.Status).
			Str("error_code", httpErr.Code)
		if detail := sqlerr.Describe(err); detail != nil {
			e = e.
				Str("sqlstate", detail.DatabaseCode).
				Str("sql_error_code", string(detail.Code)).
				Str("severity", string(detail.Severity)).
				Str("table", detail.TableName).
				Str("constraint", detail.ConstraintName)
		}
		e.Msg("storage rejected the statement")
	}

	if c.Response().Committed {
		return
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(httpErr.Status)
	} else {
		writeErr = c.JSON(httpErr.Status, httpErr)
	}
	if writeErr != nil {
		logger.Error().Err(fmt.Errorf("write error response: %w", writeErr)).Msg("failed to write error response")
	}
}
