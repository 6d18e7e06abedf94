// Package errs defines the error carrier shared by every resource.
//
// Handlers, services and middleware return *HTTPError values; the global
// echo error handler is the only place that turns them into a response, so
// every resource answers failures with the same JSON shape:
//
//	{ "code": "UNPROCESSABLE_ENTITY", "message": "...", "status": 422,
//	  "override": true, "errors": [{ "field": "amoutPay", "error": "..." }] }
package errs

import "strings"

// FieldError is a single field-level violation.
//
//	{ "field": "datePay", "error": "\"datePay\" must be a valid date" }
type FieldError struct {
	// Field is the wire name of the offending field.
	Field string `json:"field"`

	// Error is the human-readable violation.
	Error string `json:"error"`
}

// HTTPError is the error type every layer hands to the global error handler.
//
// Fields:
//   - Code: machine-friendly code (e.g. "MUTATION_FAILED").
//   - Message: human-friendly message, shown verbatim when Override is set.
//   - Status: HTTP status code.
//   - Errors: per-field violations (validation only).
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	Errors []FieldError `json:"errors"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is an *HTTPError, regardless of code or status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of e carrying message.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
	}
}

// MakeUpperCaseWithUnderscores turns "Unprocessable Entity" into
// "UNPROCESSABLE_ENTITY".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}

// JoinFieldErrors concatenates violations the way the admin UI displays them:
// one sentence per violation, separated by ". ".
func JoinFieldErrors(fieldErrors []FieldError) string {
	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fe.Error)
	}
	return strings.Join(messages, ". ")
}
