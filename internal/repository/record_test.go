package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/records-api/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var partnerColumns = []string{"id", "name", "logo", "url"}

func TestRecordRepository_ListAll(t *testing.T) {
	tests := []struct {
		name    string
		sort    model.Sort
		orderBy string
	}{
		{
			name:    "default order",
			sort:    model.Partners.DefaultSort,
			orderBy: `ORDER BY "id" ASC`,
		},
		{
			name:    "field with id tie-break",
			sort:    model.Sort{Column: "name", Direction: model.Desc},
			orderBy: `ORDER BY "name" DESC, "id" ASC`,
		},
		{
			name:    "unknown column falls back to default",
			sort:    model.Sort{Column: "name; DROP TABLE partners", Direction: model.Desc},
			orderBy: `ORDER BY "id" ASC`,
		},
		{
			name:    "unknown direction is ascending",
			sort:    model.Sort{Column: "url", Direction: "sideways"},
			orderBy: `ORDER BY "url" ASC, "id" ASC`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &recordingDB{
				columns: partnerColumns,
				rows: [][]any{
					{int64(1), "Acme", "https://acme.test/logo.png", "https://acme.test"},
				},
			}
			repo := NewRecordRepository(db, model.Partners)

			records, err := repo.ListAll(context.Background(), tt.sort)
			require.NoError(t, err)

			assert.Equal(t, `SELECT "id", "name", "logo", "url" FROM "partners" `+tt.orderBy, db.sql)
			require.Len(t, records, 1)
			assert.Equal(t, model.Record{
				"id":   int64(1),
				"name": "Acme",
				"logo": "https://acme.test/logo.png",
				"url":  "https://acme.test",
			}, records[0])
		})
	}
}

func TestRecordRepository_ListAll_Empty(t *testing.T) {
	db := &recordingDB{columns: partnerColumns}
	repo := NewRecordRepository(db, model.Partners)

	records, err := repo.ListAll(context.Background(), model.Partners.DefaultSort)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestRecordRepository_GetByID(t *testing.T) {
	date := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	db := &recordingDB{
		columns: model.PaymentRecords.Columns(),
		rows: [][]any{
			{int64(7), int64(12), true, date, 40.5, int64(1), int64(2), int64(3)},
		},
	}
	repo := NewRecordRepository(db, model.PaymentRecords)

	rec, found, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	require.True(t, found)

	assert.Contains(t, db.sql, `FROM "payment_records" WHERE "id" = $1`)
	assert.Equal(t, []any{int64(7)}, db.args)
	assert.Equal(t, model.Record{
		"id":               int64(7),
		"numberCheck":      int64(12),
		"isPaymentActiviy": true,
		"datePay":          "2024-03-09",
		"amoutPay":         40.5,
		"idPaymentMethod":  int64(1),
		"idFamily":         int64(2),
		"idFamilyMember":   int64(3),
	}, rec)
}

func TestRecordRepository_GetByID_NotFound(t *testing.T) {
	repo := NewRecordRepository(&recordingDB{columns: partnerColumns}, model.Partners)

	rec, found, err := repo.GetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, rec)
}

func TestRecordRepository_Insert(t *testing.T) {
	db := &recordingDB{id: 42}
	repo := NewRecordRepository(db, model.PaymentRecords)

	id, err := repo.Insert(context.Background(), model.Record{
		"id":               int64(5),
		"numberCheck":      int64(12),
		"isPaymentActiviy": false,
		"datePay":          "2024-03-09",
		"amoutPay":         40.5,
		"idPaymentMethod":  int64(1),
		"idFamily":         int64(2),
		"idFamilyMember":   int64(3),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	assert.Equal(t,
		`INSERT INTO "payment_records" ("number_check", "is_payment_activity", "date_pay", "amount_pay", "id_payment_method", "id_family", "id_family_member") `+
			`VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING "id"`,
		db.sql)
	require.Len(t, db.args, 7)
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), db.args[2])
}

func TestRecordRepository_Insert_Error(t *testing.T) {
	boom := errors.New("boom")
	repo := NewRecordRepository(&recordingDB{err: boom}, model.Partners)

	_, err := repo.Insert(context.Background(), model.Record{"name": "Acme"})
	assert.ErrorIs(t, err, boom)
}

func TestRecordRepository_UpdateByID(t *testing.T) {
	t.Run("only supplied columns", func(t *testing.T) {
		db := &recordingDB{tag: pgconn.NewCommandTag("UPDATE 1")}
		repo := NewRecordRepository(db, model.Partners)

		affected, err := repo.UpdateByID(context.Background(), 3, model.Record{"url": "https://a.test", "name": "A"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		assert.Equal(t, `UPDATE "partners" SET "name" = $1, "url" = $2 WHERE "id" = $3`, db.sql)
		assert.Equal(t, []any{"A", "https://a.test", int64(3)}, db.args)
	})

	t.Run("empty patch still targets the row", func(t *testing.T) {
		db := &recordingDB{tag: pgconn.NewCommandTag("UPDATE 0")}
		repo := NewRecordRepository(db, model.Partners)

		affected, err := repo.UpdateByID(context.Background(), 3, model.Record{})
		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)
		assert.Equal(t, `UPDATE "partners" SET "id" = "id" WHERE "id" = $1`, db.sql)
	})

	t.Run("invalid date", func(t *testing.T) {
		repo := NewRecordRepository(&recordingDB{}, model.PaymentRecords)

		_, err := repo.UpdateByID(context.Background(), 3, model.Record{"datePay": "09/03/2024"})
		assert.Error(t, err)
	})
}

func TestRecordRepository_DeleteByID(t *testing.T) {
	db := &recordingDB{
		columns: partnerColumns,
		rows:    [][]any{{int64(4), "Acme", "https://acme.test/l.png", "https://acme.test"}},
	}
	repo := NewRecordRepository(db, model.Partners)

	snapshot, deleted, err := repo.DeleteByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.Equal(t, "Acme", snapshot["name"])
	assert.Equal(t, `DELETE FROM "partners" WHERE "id" = $1 RETURNING "id", "name", "logo", "url"`, db.sql)
}

func TestRecordRepository_DeleteByID_Missing(t *testing.T) {
	repo := NewRecordRepository(&recordingDB{columns: partnerColumns}, model.Partners)

	snapshot, deleted, err := repo.DeleteByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Zero(t, deleted)
	assert.Nil(t, snapshot)
}
