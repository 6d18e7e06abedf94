package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/records-api/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
		expectedMsg    string
	}{
		{
			name: "unique violation names the column",
			err: &pgconn.PgError{
				Code:           "23505",
				Severity:       "ERROR",
				TableName:      "partners",
				ConstraintName: "partners_name_key",
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "PARTNER_ALREADY_EXISTS",
			expectedMsg:    "A Partner with this Name already exists",
		},
		{
			name: "not null violation",
			err: fmt.Errorf("insert: %w", &pgconn.PgError{
				Code:       "23502",
				TableName:  "payment_records",
				ColumnName: "date_pay",
			}),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "PAYMENT_RECORD_REQUIRED",
			expectedMsg:    "The Date Pay is required",
		},
		{
			name: "foreign key violation falls back to the table name",
			err: &pgconn.PgError{
				Code:       "23503",
				TableName:  "payment_records",
				ColumnName: "id_family",
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "PAYMENT_RECORD_NOT_FOUND",
			expectedMsg:    "The referenced Payment Record does not exist",
		},
		{
			name:           "unknown sqlstate hides details",
			err:            &pgconn.PgError{Code: "XX000", Message: "internal detail"},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_SERVER_ERROR",
			expectedMsg:    http.StatusText(http.StatusInternalServerError),
		},
		{
			name:           "no rows",
			err:            pgx.ErrNoRows,
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
			expectedMsg:    "Resource not found",
		},
		{
			name:           "plain error",
			err:            errors.New("connection reset"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_SERVER_ERROR",
			expectedMsg:    http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			require.ErrorAs(t, HandleError(tt.err), &httpErr)
			assert.Equal(t, tt.expectedStatus, httpErr.Status)
			assert.Equal(t, tt.expectedCode, httpErr.Code)
			assert.Equal(t, tt.expectedMsg, httpErr.Message)
		})
	}
}

func TestHandleError_PassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewMutationFailedError("Partner cannot be updated")
	assert.Same(t, original, HandleError(original))
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23514", Severity: "ERROR"})
	assert.Equal(t, CheckViolation, ErrCode(fmt.Errorf("wrap: %w", converted)))
	assert.Equal(t, Other, ErrCode(errors.New("nope")))
	assert.Equal(t, SeverityError, converted.Severity)
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "url", extractColumnForUniqueViolation("unique_partners_url"))
	assert.Equal(t, "name", extractColumnForUniqueViolation("partners_name_key"))
	assert.Equal(t, "", extractColumnForUniqueViolation("partners_pkey"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
}
