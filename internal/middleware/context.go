package middleware

import (
	"github.com/deppfellow/records-api/internal/logger"
	"github.com/deppfellow/records-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerKey is the echo context key of the request-scoped logger.
const LoggerKey = "logger"

// ContextEnhancer attaches a request-scoped logger to every request.
type ContextEnhancer struct {
	server *server.Server
}

func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext derives a logger carrying request id, method, route, client
// IP and, when New Relic is active, trace ids. The logger is stored both on
// the echo context and on the request context (zerolog.Ctx) so services
// log with the same fields.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			c.Set(LoggerKey, &contextLogger)

			ctx := contextLogger.WithContext(c.Request().Context())
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetLogger returns the request-scoped logger, or a no-op logger outside a
// request.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}
