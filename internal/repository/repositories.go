package repository

import (
	"github.com/deppfellow/records-api/internal/model"
	"github.com/deppfellow/records-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	PaymentRecords *RecordRepository
	Partners       *RecordRepository
}

// NewRepositories builds one repository per resource on the shared pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		PaymentRecords: NewRecordRepository(s.DB.Pool, model.PaymentRecords),
		Partners:       NewRecordRepository(s.DB.Pool, model.Partners),
	}
}
