package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUnprocessableEntityError(t *testing.T) {
	err := NewUnprocessableEntityError([]FieldError{
		{Field: "numberCheck", Error: `"numberCheck" is required`},
		{Field: "amoutPay", Error: `"amoutPay" must be less than or equal to 100`},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, err.Status)
	assert.Equal(t, "UNPROCESSABLE_ENTITY", err.Code)
	assert.Equal(t, `"numberCheck" is required. "amoutPay" must be less than or equal to 100`, err.Message)
	assert.True(t, err.Override)
	assert.Len(t, err.Errors, 2)
}

func TestNewMutationFailedError(t *testing.T) {
	err := NewMutationFailedError("PaymentRecord cannot be updated")

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, CodeMutationFailed, err.Code)
	assert.Equal(t, "PaymentRecord cannot be updated", err.Error())
}

func TestHTTPError_Is(t *testing.T) {
	wrapped := fmt.Errorf("update: %w", NewNotFoundError("Partner not found", true, nil))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))

	var httpErr *HTTPError
	assert.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestWithMessage(t *testing.T) {
	base := NewBadRequestError("bad", false, nil, nil)
	copied := base.WithMessage("worse")

	assert.Equal(t, "bad", base.Message)
	assert.Equal(t, "worse", copied.Message)
	assert.Equal(t, base.Code, copied.Code)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "TOO_MANY_REQUESTS", MakeUpperCaseWithUnderscores("Too Many Requests"))
}

func TestHTTPError_JSONShape(t *testing.T) {
	code := "PARTNER_INVALID"
	body, err := json.Marshal(NewBadRequestError("bad", true, &code, []FieldError{{Field: "url", Error: "bad url"}}))
	assert.NoError(t, err)
	assert.JSONEq(t, `{
		"code": "PARTNER_INVALID",
		"message": "bad",
		"status": 400,
		"override": true,
		"errors": [{"field": "url", "error": "bad url"}]
	}`, string(body))
}
