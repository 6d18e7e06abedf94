package handler

import (
	"github.com/deppfellow/records-api/internal/server"
	"github.com/deppfellow/records-api/internal/service"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler

	PaymentRecords *RecordHandler
	Partners       *RecordHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:         NewHealthHandler(s),
		OpenAPI:        NewOpenAPIHandler(s),
		PaymentRecords: NewRecordHandler(s, services.PaymentRecords),
		Partners:       NewRecordHandler(s, services.Partners),
	}
}

// Resources returns the record handlers in mount order.
func (h *Handlers) Resources() []*RecordHandler {
	return []*RecordHandler{h.PaymentRecords, h.Partners}
}

// Base returns the shared base handler used to wrap typed endpoints.
func (h *Handlers) Base() Handler {
	return h.Health.Handler
}
