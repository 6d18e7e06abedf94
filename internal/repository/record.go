package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/records-api/internal/model"
	"github.com/jackc/pgx/v5"
)

// RecordRepository stores the records of one resource.
type RecordRepository struct {
	db     DBTX
	schema *model.Schema
}

func NewRecordRepository(db DBTX, schema *model.Schema) *RecordRepository {
	return &RecordRepository{db: db, schema: schema}
}

// Schema returns the resource this repository serves.
func (r *RecordRepository) Schema() *model.Schema {
	return r.schema
}

// ListAll returns every row ordered by sort, with id as tie-break.
func (r *RecordRepository) ListAll(ctx context.Context, sort model.Sort) ([]model.Record, error) {
	rows, err := r.db.Query(ctx, r.selectSQL()+" ORDER BY "+r.orderBy(sort))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.schema.Table, err)
	}

	records, err := r.collect(rows)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.schema.Table, err)
	}
	return records, nil
}

// GetByID returns the row with the given id. The boolean is false when no
// such row exists.
func (r *RecordRepository) GetByID(ctx context.Context, id int64) (model.Record, bool, error) {
	query := r.selectSQL() + " WHERE " + quote(r.schema.IDColumn) + " = $1"

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, false, fmt.Errorf("get %s %d: %w", r.schema.Table, id, err)
	}

	row, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s %d: %w", r.schema.Table, id, err)
	}

	rec, err := r.schema.RecordFromRow(row)
	if err != nil {
		return nil, false, err
	}
	return rec, true, nil
}

// Insert stores rec and returns the id assigned by the database.
func (r *RecordRepository) Insert(ctx context.Context, rec model.Record) (int64, error) {
	columns, args, err := r.assignments(rec)
	if err != nil {
		return 0, err
	}

	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		quote(r.schema.Table),
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
		quote(r.schema.IDColumn),
	)

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert %s: %w", r.schema.Table, err)
	}
	return id, nil
}

// UpdateByID writes the fields present in patch to the row with the given
// id and reports how many rows were affected. An empty patch still targets
// the row, so the count tells whether it exists.
func (r *RecordRepository) UpdateByID(ctx context.Context, id int64, patch model.Record) (int64, error) {
	columns, args, err := r.assignments(patch)
	if err != nil {
		return 0, err
	}

	idColumn := quote(r.schema.IDColumn)

	sets := make([]string, len(columns))
	for i, column := range columns {
		sets[i] = fmt.Sprintf("%s = $%d", column, i+1)
	}
	if len(sets) == 0 {
		sets = append(sets, idColumn+" = "+idColumn)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		quote(r.schema.Table),
		strings.Join(sets, ", "),
		idColumn,
		len(args),
	)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("update %s %d: %w", r.schema.Table, id, err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByID removes the row with the given id and returns it as it was
// before deletion along with the number of rows removed.
func (r *RecordRepository) DeleteByID(ctx context.Context, id int64) (model.Record, int64, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1 RETURNING %s",
		quote(r.schema.Table),
		quote(r.schema.IDColumn),
		r.columnList(),
	)

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, 0, fmt.Errorf("delete %s %d: %w", r.schema.Table, id, err)
	}

	records, err := r.collect(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("delete %s %d: %w", r.schema.Table, id, err)
	}
	if len(records) == 0 {
		return nil, 0, nil
	}
	return records[0], int64(len(records)), nil
}

func (r *RecordRepository) collect(rows pgx.Rows) ([]model.Record, error) {
	raw, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, err
	}

	records := make([]model.Record, 0, len(raw))
	for _, row := range raw {
		rec, err := r.schema.RecordFromRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// assignments returns the quoted columns and SQL arguments for the schema
// fields present in rec, in schema order. The id and unknown keys are
// ignored.
func (r *RecordRepository) assignments(rec model.Record) ([]string, []any, error) {
	var (
		columns []string
		args    []any
	)
	for _, f := range r.schema.Fields {
		v, ok := rec[f.Name]
		if !ok {
			continue
		}
		arg, err := f.SQLValue(v)
		if err != nil {
			return nil, nil, err
		}
		columns = append(columns, quote(f.Column))
		args = append(args, arg)
	}
	return columns, args, nil
}

func (r *RecordRepository) selectSQL() string {
	return "SELECT " + r.columnList() + " FROM " + quote(r.schema.Table)
}

func (r *RecordRepository) columnList() string {
	columns := r.schema.Columns()
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quote(c)
	}
	return strings.Join(quoted, ", ")
}

// orderBy renders sort. Columns outside the schema fall back to the default
// order.
func (r *RecordRepository) orderBy(sort model.Sort) string {
	if !r.knownColumn(sort.Column) {
		sort = r.schema.DefaultSort
	}

	direction := model.Asc
	if sort.Direction == model.Desc {
		direction = model.Desc
	}

	clause := quote(sort.Column) + " " + string(direction)
	if sort.Column != r.schema.IDColumn {
		clause += ", " + quote(r.schema.IDColumn) + " " + string(model.Asc)
	}
	return clause
}

func (r *RecordRepository) knownColumn(column string) bool {
	if column == r.schema.IDColumn {
		return true
	}
	_, ok := r.schema.FieldByColumn(column)
	return ok
}

func quote(identifier string) string {
	return pgx.Identifier{identifier}.Sanitize()
}
