package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/deppfellow/records-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request types that validate themselves,
// usually by running validator.Struct on their tags.
type Validatable interface {
	Validate() error
}

// Binder is implemented by request types that bind themselves instead of
// going through echo's DefaultBinder, e.g. to read only path parameters.
type Binder interface {
	Bind(c echo.Context) error
}

// BindAndValidate binds path, query and body values into payload and then
// validates it. Failures come back as a 400 *errs.HTTPError.
//
// payload must be a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	var err error
	if b, ok := payload.(Binder); ok {
		err = b.Bind(c)
	} else {
		err = c.Bind(payload)
	}
	if err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), false, nil, nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors)
	}

	return nil
}

func bindErrorMessage(err error) string {
	var be *echo.BindingError
	if errors.As(err, &be) {
		return fmt.Sprintf("Invalid %s", be.Field)
	}

	if he, ok := err.(*echo.HTTPError); ok {
		if msg, ok := he.Message.(string); ok && msg != "" {
			return msg
		}
	}
	return "Invalid request parameters"
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	switch e := err.(type) {
	case validator.ValidationErrors:
		for _, fe := range e {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: strings.ToLower(fe.Field()),
				Error: tagMessage(fe),
			})
		}

	default:
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "", Error: err.Error()})
	}

	return "Validation failed", fieldErrors
}

// tagMessage renders a validator failure without the field name.
func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"

	case "min":
		if fe.Type().Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())

	case "max":
		if fe.Type().Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())

	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())

	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())

	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())

	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())

	case "url":
		return "must be a valid uri"

	case maxDateTag:
		return fmt.Sprintf("must be less than or equal to \"%s\"", fe.Param())

	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed on the '%s:%s' rule", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
