package handler

import (
	"fmt"

	"github.com/deppfellow/records-api/internal/errs"
	"github.com/deppfellow/records-api/internal/middleware"
	"github.com/deppfellow/records-api/internal/model"
	"github.com/deppfellow/records-api/internal/server"
	"github.com/deppfellow/records-api/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var requestValidator = validator.New()

// ListRequest carries the react-admin sort directive, e.g.
// sort=["datePay","DESC"].
type ListRequest struct {
	Sort string `query:"sort"`
}

// Validate accepts anything: unusable sort directives fall back to the
// default order.
func (r *ListRequest) Validate() error {
	return nil
}

// RecordIDRequest addresses one record by path id.
type RecordIDRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,gt=0"`
}

// Bind reads only the path; the body belongs to the payload middleware.
func (r *RecordIDRequest) Bind(c echo.Context) error {
	return echo.PathParamsBinder(c).MustInt64("id", &r.ID).BindError()
}

func (r *RecordIDRequest) Validate() error {
	return requestValidator.Struct(r)
}

// CreateRequest has no bindable fields; the record comes from the payload
// middleware.
type CreateRequest struct{}

func (r *CreateRequest) Bind(c echo.Context) error {
	return nil
}

func (r *CreateRequest) Validate() error {
	return nil
}

// RecordHandler serves list, get, create, update and delete for one
// resource.
type RecordHandler struct {
	Handler
	service *service.RecordService
}

func NewRecordHandler(s *server.Server, svc *service.RecordService) *RecordHandler {
	return &RecordHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

func (h *RecordHandler) Schema() *model.Schema {
	return h.service.Schema()
}

// List returns every record and sets Content-Range to the returned count.
func (h *RecordHandler) List(c echo.Context, req *ListRequest) ([]model.Record, error) {
	records, err := h.service.List(c.Request().Context(), req.Sort)
	if err != nil {
		return nil, err
	}

	c.Response().Header().Set(middleware.ContentRangeHeader, contentRange(h.Schema().Path, len(records)))
	return records, nil
}

func (h *RecordHandler) Get(c echo.Context, req *RecordIDRequest) (model.Record, error) {
	return h.service.Get(c.Request().Context(), req.ID)
}

func (h *RecordHandler) Create(c echo.Context, req *CreateRequest) (model.Record, error) {
	rec, err := payload(c)
	if err != nil {
		return nil, err
	}
	return h.service.Create(c.Request().Context(), rec)
}

func (h *RecordHandler) Update(c echo.Context, req *RecordIDRequest) (model.Record, error) {
	rec, err := payload(c)
	if err != nil {
		return nil, err
	}
	return h.service.Update(c.Request().Context(), req.ID, rec)
}

func (h *RecordHandler) Delete(c echo.Context, req *RecordIDRequest) (model.Record, error) {
	return h.service.Delete(c.Request().Context(), req.ID)
}

// payload returns the record validated by middleware.ValidatePayload.
func payload(c echo.Context) (model.Record, error) {
	rec, ok := middleware.GetPayload(c)
	if !ok {
		middleware.GetLogger(c).Error().Msg("route has no payload validation")
		return nil, errs.NewInternalServerError()
	}
	return rec, nil
}

// contentRange renders "<resource> 0-<n-1>/<n>", or "<resource> 0-0/0" for
// an empty list.
func contentRange(resource string, n int) string {
	if n == 0 {
		return resource + " 0-0/0"
	}
	return fmt.Sprintf("%s 0-%d/%d", resource, n-1, n)
}
