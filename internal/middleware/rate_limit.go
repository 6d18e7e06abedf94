package middleware

import (
	"time"

	"github.com/deppfellow/records-api/internal/errs"
	"github.com/deppfellow/records-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// rateLimitExpiry is how long an idle client's token bucket is kept.
const rateLimitExpiry = 3 * time.Minute

type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// Limit throttles each client IP to Server.RateLimit requests per second.
// A zero rate disables throttling.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	limit := r.server.Config.Server.RateLimit
	if limit <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(limit),
		Burst:     max(1, int(limit)),
		ExpiresIn: rateLimitExpiry,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errs.NewBadRequestError("Unable to identify client", false, nil, nil)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())
			GetLogger(c).Warn().
				Str("client", identifier).
				Msg("rate limit exceeded")
			return errs.NewTooManyRequestsError("Rate limit exceeded")
		},
	})
}

// RecordRateLimitHit reports a throttled request to New Relic.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]any{
			"endpoint": endpoint,
		})
	}
}
