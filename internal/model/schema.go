package model

import (
	"fmt"
	"strings"
	"time"
)

// IDField is the wire name of the server-assigned identifier.
const IDField = "id"

// DateLayout is the wire and storage format of date fields.
const DateLayout = "2006-01-02"

// Kind is the scalar type of a field.
type Kind int

const (
	KindInteger Kind = iota
	KindNumber
	KindBoolean
	KindDate
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindDate:
		return "date"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Field describes one business column of a resource.
type Field struct {
	// Name is the JSON key used by the admin front end.
	Name string

	// Column is the SQL column the field is stored in.
	Column string

	Kind Kind

	// Rules is a go-playground/validator tag applied to the converted value,
	// e.g. "lte=100" or "max=255,url".
	Rules string
}

// Schema describes a resource table and how its rows map to records.
type Schema struct {
	// Name is the singular display name used in messages ("PaymentRecord").
	Name string

	// Path is the URL segment the resource is mounted on ("payment-records").
	Path string

	Table    string
	IDColumn string
	Fields   []Field

	// DefaultSort is applied when the client sends no usable sort directive.
	DefaultSort Sort
}

// Field looks a field up by wire name.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// FieldByColumn looks a field up by column name.
func (s *Schema) FieldByColumn(column string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Column == column {
			return f, true
		}
	}
	return Field{}, false
}

// Columns returns the id column followed by every field column, in schema
// order.
func (s *Schema) Columns() []string {
	columns := make([]string, 0, len(s.Fields)+1)
	columns = append(columns, s.IDColumn)
	for _, f := range s.Fields {
		columns = append(columns, f.Column)
	}
	return columns
}

// Lower returns the display name in lower case for messages such as
// "This partner cannot be deleted".
func (s *Schema) Lower() string {
	if s.Name == "" {
		return ""
	}
	return strings.ToLower(s.Name[:1]) + s.Name[1:]
}

// SQLValue converts a normalised record value into the argument handed to
// pgx for this field.
func (f Field) SQLValue(v any) (any, error) {
	if v == nil || f.Kind != KindDate {
		return v, nil
	}

	switch d := v.(type) {
	case time.Time:
		return d, nil
	case string:
		t, err := time.Parse(DateLayout, d)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("field %s: unexpected date value %T", f.Name, v)
	}
}
