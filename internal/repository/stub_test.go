package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// recordingDB captures the last statement and replays canned results.
type recordingDB struct {
	sql  string
	args []any

	columns []string
	rows    [][]any
	id      int64
	tag     pgconn.CommandTag
	err     error
}

func (db *recordingDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.sql, db.args = sql, args
	return db.tag, db.err
}

func (db *recordingDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	db.sql, db.args = sql, args
	if db.err != nil {
		return nil, db.err
	}
	return &fakeRows{columns: db.columns, data: db.rows, pos: -1}, nil
}

func (db *recordingDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	db.sql, db.args = sql, args
	return fakeRow{id: db.id, err: db.err}
}

type fakeRow struct {
	id  int64
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != 1 {
		return errors.New("expected one destination")
	}
	p, ok := dest[0].(*int64)
	if !ok {
		return errors.New("expected *int64 destination")
	}
	*p = r.id
	return nil
}

type fakeRows struct {
	columns []string
	data    [][]any
	pos     int
}

func (r *fakeRows) Close()                        {}
func (r *fakeRows) Err() error                    { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) RawValues() [][]byte           { return nil }
func (r *fakeRows) Conn() *pgx.Conn               { return nil }

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	fds := make([]pgconn.FieldDescription, len(r.columns))
	for i, c := range r.columns {
		fds[i] = pgconn.FieldDescription{Name: c}
	}
	return fds
}

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos < len(r.data)
}

// Scan serves pgx's row scanners (RowToMap among them) from Values.
func (r *fakeRows) Scan(dest ...any) error {
	if len(dest) == 1 {
		if rs, ok := dest[0].(pgx.RowScanner); ok {
			return rs.ScanRow(r)
		}
	}
	return errors.New("scan not supported")
}

func (r *fakeRows) Values() ([]any, error) {
	return r.data[r.pos], nil
}
