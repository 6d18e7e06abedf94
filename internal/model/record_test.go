package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_RecordFromRow(t *testing.T) {
	row := map[string]any{
		"id":                  int64(7),
		"number_check":        int32(12),
		"is_payment_activity": true,
		"date_pay":            time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
		"amount_pay":          float64(42.5),
		"id_payment_method":   int32(1),
		"id_family":           int32(2),
		"id_family_member":    int32(3),
		"created_at":          time.Now(),
	}

	rec, err := PaymentRecords.RecordFromRow(row)
	require.NoError(t, err)

	assert.Equal(t, Record{
		"id":               int64(7),
		"numberCheck":      int64(12),
		"isPaymentActiviy": true,
		"datePay":          "2024-03-09",
		"amoutPay":         42.5,
		"idPaymentMethod":  int64(1),
		"idFamily":         int64(2),
		"idFamilyMember":   int64(3),
	}, rec)

	id, ok := rec.ID()
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)
}

func TestSchema_RecordFromRow_RejectsWrongType(t *testing.T) {
	_, err := Partners.RecordFromRow(map[string]any{"id": int64(1), "name": 12})
	assert.Error(t, err)
}

func TestRecord_Merge(t *testing.T) {
	base := Record{"id": int64(1), "name": "Acme", "url": "https://acme.test"}
	merged := base.Merge(Record{"name": "Acme Corp"})

	assert.Equal(t, "Acme", base["name"])
	assert.Equal(t, Record{"id": int64(1), "name": "Acme Corp", "url": "https://acme.test"}, merged)
}

func TestField_SQLValue(t *testing.T) {
	f, ok := PaymentRecords.Field("datePay")
	require.True(t, ok)

	v, err := f.SQLValue("2024-03-09")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), v)

	_, err = f.SQLValue("09/03/2024")
	assert.Error(t, err)

	name, _ := Partners.Field("name")
	v, err = name.SQLValue("Acme")
	require.NoError(t, err)
	assert.Equal(t, "Acme", v)
}

func TestSchema_Columns(t *testing.T) {
	assert.Equal(t, []string{"id", "name", "logo", "url"}, Partners.Columns())
	assert.Equal(t, "paymentRecord", PaymentRecords.Lower())
}
