package handler

import (
	"reflect"
	"time"

	"github.com/deppfellow/records-api/internal/middleware"
	"github.com/deppfellow/records-api/internal/server"
	"github.com/deppfellow/records-api/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is the base handler type that holds shared application
// dependencies. Concrete handlers embed it.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint that receives a bound and validated
// request. Req is a pointer to a request struct.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// ResponseHandler writes a successful result and names the operation in
// logs and traces.
type ResponseHandler interface {
	Handle(c echo.Context, result any) error
	GetOperation() string
	AddAttributes(txn *newrelic.Transaction, result any)
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result any) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result any) {
	if txn == nil {
		return
	}
	if v := reflect.ValueOf(result); v.Kind() == reflect.Slice {
		txn.AddAttribute("response.items", v.Len())
	}
}

// newRequest allocates a fresh request value of the same type as template,
// so concurrent requests never share one.
func newRequest[Req validation.Validatable](template Req) Req {
	t := reflect.TypeOf(template)
	if t == nil || t.Kind() != reflect.Pointer {
		return template
	}
	return reflect.New(t.Elem()).Interface().(Req)
}

// handleRequest is the pipeline shared by every typed endpoint: bind and
// validate, run the handler, write the response, with timings logged and
// attached to the New Relic transaction.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (any, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	method := c.Request().Method
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
		responseHandler.AddAttributes(txn, nil)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("method", method).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	validationStart := time.Now()
	if err := validation.BindAndValidate(c, req); err != nil {
		validationDuration := time.Since(validationStart)

		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}

		return err
	}

	validationDuration := time.Since(validationStart)
	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		totalDuration := time.Since(start)

		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		}
		return err
	}

	totalDuration := time.Since(start)
	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		responseHandler.AddAttributes(txn, result)
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler into an echo.HandlerFunc. req is a template:
// a new value of its type is allocated for every request.
//
//	g.POST("", handler.Handle(h, rh.Create, http.StatusCreated, &handler.CreateRequest{}))
func Handle[Req validation.Validatable, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	req Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newRequest(req), func(c echo.Context, req Req) (any, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}
