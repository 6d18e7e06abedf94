package middleware

import (
	"bytes"
	"io"

	"github.com/deppfellow/records-api/internal/errs"
	"github.com/deppfellow/records-api/internal/model"
	"github.com/deppfellow/records-api/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PayloadKey is the echo context key of the validated record.
const PayloadKey = "payload"

// ValidatePayload checks the JSON body of POST, PUT and PATCH requests
// against schema. POST requires every field; updates accept any subset.
//
// All violations are reported together in one 422. On success the
// normalised record is stored under PayloadKey and the body is restored for
// later stages.
func ValidatePayload(schema *model.Schema) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			var body []byte
			if req.Body != nil {
				var err error
				body, err = io.ReadAll(req.Body)
				if err != nil {
					// BodyLimit reports an oversized stream as a 413.
					var echoErr *echo.HTTPError
					if errors.As(err, &echoErr) {
						return echoErr
					}
					return errs.NewBadRequestError("Unable to read request body", false, nil, nil)
				}
			}
			req.Body = io.NopCloser(bytes.NewReader(body))

			payload, err := validation.DecodePayload(body)
			if err != nil {
				return errs.NewUnprocessableEntityError([]errs.FieldError{{
					Field: "",
					Error: `"value" must be of type object`,
				}})
			}

			presence := validation.PresenceForMethod(req.Method)
			rec, violations := validation.ValidatePayload(schema, payload, presence)
			if len(violations) > 0 {
				GetLogger(c).Debug().
					Str("resource", schema.Name).
					Str("presence", presence.String()).
					Int("violations", len(violations)).
					Msg("payload rejected")
				return errs.NewUnprocessableEntityError(violations)
			}

			c.Set(PayloadKey, rec)
			return next(c)
		}
	}
}

// GetPayload returns the record stored by ValidatePayload.
func GetPayload(c echo.Context) (model.Record, bool) {
	rec, ok := c.Get(PayloadKey).(model.Record)
	return rec, ok
}
