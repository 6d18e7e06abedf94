package errs

import (
	"net/http"
)

// CodeMutationFailed marks an update or delete that touched zero rows.
const CodeMutationFailed = "MUTATION_FAILED"

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code overrides the default "BAD_REQUEST" when non-nil; errors is optional.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewUnprocessableEntityError creates the 422 returned when a payload fails
// its resource schema. The message is the aggregate of every violation.
func NewUnprocessableEntityError(fieldErrors []FieldError) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnprocessableEntity)),
		Message:  JoinFieldErrors(fieldErrors),
		Status:   http.StatusUnprocessableEntity,
		Override: true,
		Errors:   fieldErrors,
	}
}

// NewMutationFailedError creates the 500 returned when an update or delete
// affected no row. Unlike NewInternalServerError the message is meant for
// the client.
func NewMutationFailedError(message string) *HTTPError {
	return &HTTPError{
		Code:     CodeMutationFailed,
		Message:  message,
		Status:   http.StatusInternalServerError,
		Override: true,
	}
}

// NewTooManyRequestsError creates a 429 Too Many Requests HTTPError.
func NewTooManyRequestsError(message string) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)),
		Message:  message,
		Status:   http.StatusTooManyRequests,
		Override: false,
	}
}

// NewInternalServerError creates a generic 500. The message is the status
// text, never the underlying error.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}
