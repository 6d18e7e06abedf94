package service

import (
	"context"

	"github.com/deppfellow/records-api/internal/errs"
	"github.com/deppfellow/records-api/internal/model"
	"github.com/rs/zerolog"
)

// RecordStore persists the records of one resource.
type RecordStore interface {
	Schema() *model.Schema
	ListAll(ctx context.Context, sort model.Sort) ([]model.Record, error)
	GetByID(ctx context.Context, id int64) (model.Record, bool, error)
	Insert(ctx context.Context, rec model.Record) (int64, error)
	UpdateByID(ctx context.Context, id int64, patch model.Record) (int64, error)
	DeleteByID(ctx context.Context, id int64) (model.Record, int64, error)
}

// RecordService implements list, get, create, update and delete for one
// resource. Storage errors are returned unchanged.
type RecordService struct {
	store  RecordStore
	schema *model.Schema
}

func NewRecordService(store RecordStore) *RecordService {
	return &RecordService{store: store, schema: store.Schema()}
}

func (s *RecordService) Schema() *model.Schema {
	return s.schema
}

// List returns every record, ordered by the react-admin sort directive when
// it names a known field, by the default order otherwise.
func (s *RecordService) List(ctx context.Context, rawSort string) ([]model.Record, error) {
	sort, ok := s.schema.ParseSort(rawSort)
	if !ok && rawSort != "" {
		zerolog.Ctx(ctx).Debug().
			Str("resource", s.schema.Name).
			Str("sort", rawSort).
			Msg("ignoring unusable sort directive")
	}

	return s.store.ListAll(ctx, sort)
}

func (s *RecordService) Get(ctx context.Context, id int64) (model.Record, error) {
	rec, found, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NewNotFoundError(s.schema.Name+" not found", false, nil)
	}
	return rec, nil
}

// Create stores rec and returns it with its new id.
func (s *RecordService) Create(ctx context.Context, rec model.Record) (model.Record, error) {
	id, err := s.store.Insert(ctx, rec)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("resource", s.schema.Name).
		Int64("id", id).
		Msg("record created")

	return rec.Merge(model.Record{model.IDField: id}), nil
}

// Update applies patch and returns the stored record afterwards. Updating a
// missing id is a MutationFailed error.
func (s *RecordService) Update(ctx context.Context, id int64, patch model.Record) (model.Record, error) {
	affected, err := s.store.UpdateByID(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, errs.NewMutationFailedError(s.schema.Name + " cannot be updated")
	}

	zerolog.Ctx(ctx).Info().
		Str("resource", s.schema.Name).
		Int64("id", id).
		Int("fields", len(patch)).
		Msg("record updated")

	return s.Get(ctx, id)
}

// Delete removes the record and returns it as it was. Deleting a missing id
// is a MutationFailed error.
func (s *RecordService) Delete(ctx context.Context, id int64) (model.Record, error) {
	snapshot, deleted, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if deleted == 0 {
		return nil, errs.NewMutationFailedError("This " + s.schema.Lower() + " cannot be deleted")
	}

	zerolog.Ctx(ctx).Info().
		Str("resource", s.schema.Name).
		Int64("id", id).
		Msg("record deleted")

	return snapshot, nil
}
