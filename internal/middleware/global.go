package middleware

import (
	"net/http"

	"github.com/deppfellow/records-api/internal/errs"
	"github.com/deppfellow/records-api/internal/server"
	"github.com/deppfellow/records-api/internal/sqlerr"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ContentRangeHeader carries the list size react-admin reads.
const ContentRangeHeader = "Content-Range"

type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS allows the configured origins and exposes Content-Range so the admin
// UI can read list totals.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  global.server.Config.Server.CORSAllowedOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		ExposeHeaders: []string{ContentRangeHeader, RequestIDHeader},
	})
}

// BodyLimit rejects request bodies larger than Server.BodyLimit.
func (global *GlobalMiddlewares) BodyLimit() echo.MiddlewareFunc {
	return middleware.BodyLimit(global.server.Config.Server.BodyLimit)
}

// RequestLogger writes one "API" line per request with the final status.
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

			// The response status is not final yet when an error is pending.
			if v.Error != nil {
				var httpErr *errs.HTTPError
				var echoErr *echo.HTTPError

				if errors.As(v.Error, &httpErr) {
					statusCode = httpErr.Status
				} else if errors.As(v.Error, &echoErr) {
					statusCode = echoErr.Code
				}
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

func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler is the only place errors become responses. Every
// failure is written as an errs.HTTPError body:
//   - *errs.HTTPError as is
//   - echo route 404 as "Route not found", other echo errors by their code
//   - anything else through sqlerr.HandleError
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	originalErr := err

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			if echoErr.Code == http.StatusNotFound {
				err = errs.NewNotFoundError("Route not found", false, nil)
			}
		} else {
			err = sqlerr.HandleError(err)
		}
	}

	var echoErr *echo.HTTPError
	var status int
	var code string
	var message string
	var fieldErrors []errs.FieldError

	switch {
	case errors.As(err, &httpErr):
		status = httpErr.Status
		code = httpErr.Code
		message = httpErr.Message
		fieldErrors = httpErr.Errors

	case errors.As(err, &echoErr):
		status = echoErr.Code
		code = errs.MakeUpperCaseWithUnderscores(http.StatusText(status))

		if msg, ok := echoErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(echoErr.Code)
		}

	default:
		status = http.StatusInternalServerError
		code = errs.MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError))
		message = http.StatusText(http.StatusInternalServerError)
	}

	logger := GetLogger(c)

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error().Stack()
	}
	event.
		Err(originalErr).
		Int("status", status).
		Str("error_code", code).
		Msg(message)

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}

	_ = c.JSON(status, errs.HTTPError{
		Code:     code,
		Message:  message,
		Status:   status,
		Override: httpErr != nil && httpErr.Override,
		Errors:   fieldErrors,
	})
}
