package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/deppfellow/records-api/internal/errs"
	"github.com/deppfellow/records-api/internal/model"
	"github.com/go-playground/validator/v10"
)

// Presence decides whether schema fields must be supplied.
type Presence int

const (
	// PresenceOptional lets any subset of fields through (updates).
	PresenceOptional Presence = iota

	// PresenceRequired demands every business field (creates).
	PresenceRequired
)

func (p Presence) String() string {
	if p == PresenceRequired {
		return "required"
	}
	return "optional"
}

// PresenceForMethod maps the request method to a presence mode: POST creates
// and requires everything, every other method is a partial update.
func PresenceForMethod(method string) Presence {
	if method == http.MethodPost {
		return PresenceRequired
	}
	return PresenceOptional
}

const maxDateTag = "maxdate"

var payloadValidator = newPayloadValidator()

func newPayloadValidator() *validator.Validate {
	v := validator.New()

	// maxdate=2006-01-02 bounds a time.Time from above.
	if err := v.RegisterValidation(maxDateTag, func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		if !ok {
			return false
		}
		limit, err := time.Parse(model.DateLayout, fl.Param())
		if err != nil {
			return false
		}
		return !t.After(limit)
	}); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", maxDateTag, err))
	}

	return v
}

// DecodePayload parses a JSON object body, keeping numbers as json.Number so
// integers and floats can be told apart.
func DecodePayload(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, fmt.Errorf("payload must be a JSON object")
	}
	if dec.More() {
		return nil, fmt.Errorf("payload must contain a single JSON object")
	}
	return payload, nil
}

// ValidatePayload checks payload against schema and returns the normalised
// record together with every violation found.
//
// The id key is always optional; when present it must be an integer and is
// left out of the returned record. Keys unknown to the schema are
// violations.
func ValidatePayload(schema *model.Schema, payload map[string]any, presence Presence) (model.Record, []errs.FieldError) {
	rec := make(model.Record, len(schema.Fields))
	var violations []errs.FieldError

	for _, f := range schema.Fields {
		raw, present := payload[f.Name]
		if !present {
			if presence == PresenceRequired {
				violations = append(violations, violation(f.Name, "is required"))
			}
			continue
		}

		value, msg := convert(f.Kind, raw)
		if msg != "" {
			violations = append(violations, violation(f.Name, msg))
			continue
		}

		if f.Rules != "" {
			if err := payloadValidator.Var(value, f.Rules); err != nil {
				violations = append(violations, violation(f.Name, ruleMessage(err)))
				continue
			}
		}

		if t, ok := value.(time.Time); ok {
			value = t.Format(model.DateLayout)
		}
		rec[f.Name] = value
	}

	if raw, present := payload[model.IDField]; present && raw != nil {
		if _, msg := convert(model.KindInteger, raw); msg != "" {
			violations = append(violations, violation(model.IDField, msg))
		}
	}

	var unknown []string
	for key := range payload {
		if key == model.IDField {
			continue
		}
		if _, ok := schema.Field(key); !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		violations = append(violations, violation(key, "is not allowed"))
	}

	return rec, violations
}

func violation(field, msg string) errs.FieldError {
	return errs.FieldError{
		Field: field,
		Error: fmt.Sprintf("%q %s", field, msg),
	}
}

func ruleMessage(err error) string {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		return tagMessage(ves[0])
	}
	return "is invalid"
}

// convert checks raw against kind and returns the typed value, or a
// violation message.
func convert(kind model.Kind, raw any) (any, string) {
	switch kind {
	case model.KindInteger:
		switch n := raw.(type) {
		case json.Number:
			if i, err := n.Int64(); err == nil {
				return i, ""
			}
			// 1.0 and 1e2 are integers too
			if f, err := n.Float64(); err == nil {
				if i, ok := integral(f); ok {
					return i, ""
				}
			}
		case float64:
			if i, ok := integral(n); ok {
				return i, ""
			}
		}
		return nil, "must be an integer"

	case model.KindNumber:
		switch n := raw.(type) {
		case json.Number:
			if f, err := n.Float64(); err == nil {
				return f, ""
			}
		case float64:
			return n, ""
		}
		return nil, "must be a number"

	case model.KindBoolean:
		if b, ok := raw.(bool); ok {
			return b, ""
		}
		return nil, "must be a boolean"

	case model.KindDate:
		switch d := raw.(type) {
		case string:
			if t, err := parseDate(d); err == nil {
				return t, ""
			}
		case json.Number:
			if ms, err := d.Int64(); err == nil {
				return time.UnixMilli(ms).UTC(), ""
			}
		}
		return nil, "must be a valid date"

	case model.KindString:
		if s, ok := raw.(string); ok {
			return strings.TrimSpace(s), ""
		}
		return nil, "must be a string"
	}

	return nil, "has an unsupported type"
}

func integral(f float64) (int64, bool) {
	if math.Trunc(f) != f || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(model.DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
