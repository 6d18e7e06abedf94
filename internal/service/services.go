package service

import (
	"github.com/deppfellow/records-api/internal/model"
	"github.com/deppfellow/records-api/internal/repository"
	"github.com/deppfellow/records-api/internal/server"
)

type Services struct {
	PaymentRecords *RecordService
	Partners       *RecordService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	services := &Services{
		PaymentRecords: NewRecordService(repos.PaymentRecords),
		Partners:       NewRecordService(repos.Partners),
	}

	for _, schema := range model.All() {
		s.Logger.Debug().
			Str("resource", schema.Name).
			Str("table", schema.Table).
			Msg("resource service ready")
	}

	return services, nil
}
