package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchema_ParseSort(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		expected   Sort
		recognized bool
	}{
		{
			name:       "empty uses default",
			raw:        "",
			expected:   Sort{Column: "id", Direction: Asc},
			recognized: false,
		},
		{
			name:       "wire name maps to column",
			raw:        `["amoutPay","DESC"]`,
			expected:   Sort{Column: "amount_pay", Direction: Desc},
			recognized: true,
		},
		{
			name:       "direction is case insensitive",
			raw:        `["datePay","asc"]`,
			expected:   Sort{Column: "date_pay", Direction: Asc},
			recognized: true,
		},
		{
			name:       "id is sortable",
			raw:        `["id","DESC"]`,
			expected:   Sort{Column: "id", Direction: Desc},
			recognized: true,
		},
		{
			name:       "unknown field falls back",
			raw:        `["amount_pay; DROP TABLE payment_records","ASC"]`,
			expected:   Sort{Column: "id", Direction: Asc},
			recognized: false,
		},
		{
			name:       "unknown direction falls back",
			raw:        `["datePay","SIDEWAYS"]`,
			expected:   Sort{Column: "id", Direction: Asc},
			recognized: false,
		},
		{
			name:       "malformed json falls back",
			raw:        `datePay ASC`,
			expected:   Sort{Column: "id", Direction: Asc},
			recognized: false,
		},
		{
			name:       "wrong arity falls back",
			raw:        `["datePay"]`,
			expected:   Sort{Column: "id", Direction: Asc},
			recognized: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sort, ok := PaymentRecords.ParseSort(tt.raw)
			assert.Equal(t, tt.expected, sort)
			assert.Equal(t, tt.recognized, ok)
		})
	}
}
