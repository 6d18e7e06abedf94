// Package testutil holds test doubles shared by the service and handler
// tests.
package testutil

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/deppfellow/records-api/internal/model"
)

// MemStore is an in-memory record store for one resource. It follows the
// same contract as repository.RecordRepository, including sort tie-breaks on
// id and zero affected rows for missing ids.
type MemStore struct {
	mu     sync.Mutex
	schema *model.Schema
	nextID int64
	rows   map[int64]model.Record

	// Err, when set, is returned by every operation.
	Err error
}

func NewMemStore(schema *model.Schema) *MemStore {
	return &MemStore{
		schema: schema,
		nextID: 1,
		rows:   make(map[int64]model.Record),
	}
}

func (m *MemStore) Schema() *model.Schema {
	return m.schema
}

// Seed inserts records directly and returns their ids.
func (m *MemStore) Seed(records ...model.Record) []int64 {
	ids := make([]int64, 0, len(records))
	for _, rec := range records {
		id, _ := m.Insert(context.Background(), rec)
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of stored records.
func (m *MemStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

func (m *MemStore) ListAll(_ context.Context, sort model.Sort) ([]model.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	field := m.wireName(sort.Column)
	if field == "" {
		field = m.wireName(m.schema.DefaultSort.Column)
		sort = m.schema.DefaultSort
	}

	records := make([]model.Record, 0, len(m.rows))
	for _, rec := range m.rows {
		records = append(records, rec.Clone())
	}

	slices.SortFunc(records, func(a, b model.Record) int {
		c := compareValues(a[field], b[field])
		if sort.Direction == model.Desc {
			c = -c
		}
		if c != 0 {
			return c
		}
		idA, _ := a.ID()
		idB, _ := b.ID()
		return cmp.Compare(idA, idB)
	})

	return records, nil
}

func (m *MemStore) GetByID(_ context.Context, id int64) (model.Record, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, false, m.Err
	}

	rec, ok := m.rows[id]
	if !ok {
		return nil, false, nil
	}
	return rec.Clone(), true, nil
}

func (m *MemStore) Insert(_ context.Context, rec model.Record) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return 0, m.Err
	}

	id := m.nextID
	m.nextID++

	stored := m.fieldsOnly(rec)
	stored[model.IDField] = id
	m.rows[id] = stored
	return id, nil
}

func (m *MemStore) UpdateByID(_ context.Context, id int64, patch model.Record) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return 0, m.Err
	}

	rec, ok := m.rows[id]
	if !ok {
		return 0, nil
	}
	m.rows[id] = rec.Merge(m.fieldsOnly(patch))
	return 1, nil
}

func (m *MemStore) DeleteByID(_ context.Context, id int64) (model.Record, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, 0, m.Err
	}

	rec, ok := m.rows[id]
	if !ok {
		return nil, 0, nil
	}
	delete(m.rows, id)
	return rec, 1, nil
}

func (m *MemStore) fieldsOnly(rec model.Record) model.Record {
	out := make(model.Record, len(m.schema.Fields)+1)
	for _, f := range m.schema.Fields {
		if v, ok := rec[f.Name]; ok {
			out[f.Name] = v
		}
	}
	return out
}

func (m *MemStore) wireName(column string) string {
	if column == m.schema.IDColumn {
		return model.IDField
	}
	if f, ok := m.schema.FieldByColumn(column); ok {
		return f.Name
	}
	return ""
}

// compareValues orders normalised record values. Nil sorts first.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	switch x := a.(type) {
	case int64:
		if y, ok := b.(int64); ok {
			return cmp.Compare(x, y)
		}
	case float64:
		if y, ok := b.(float64); ok {
			return cmp.Compare(x, y)
		}
	case string:
		if y, ok := b.(string); ok {
			return cmp.Compare(x, y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		}
	}
	return 0
}
