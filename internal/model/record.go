package model

import (
	"fmt"
	"time"
)

// Record is one resource row keyed by wire field name. Values are
// normalised: integers int64, numbers float64, booleans bool, dates strings
// in DateLayout and strings string.
type Record map[string]any

// ID returns the record identifier, if set.
func (r Record) ID() (int64, bool) {
	id, ok := r[IDField].(int64)
	return id, ok
}

// Clone returns a shallow copy of r.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Merge returns a copy of r overlaid with patch.
func (r Record) Merge(patch Record) Record {
	out := r.Clone()
	for k, v := range patch {
		out[k] = v
	}
	return out
}

// RecordFromRow converts a column-keyed row into a Record.
//
// Columns that are not part of the schema are dropped.
func (s *Schema) RecordFromRow(row map[string]any) (Record, error) {
	rec := make(Record, len(s.Fields)+1)

	if raw, ok := row[s.IDColumn]; ok {
		id, err := toInt64(raw)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", s.Table, s.IDColumn, err)
		}
		rec[IDField] = id
	}

	for _, f := range s.Fields {
		raw, ok := row[f.Column]
		if !ok {
			continue
		}
		v, err := normalize(f.Kind, raw)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", s.Table, f.Column, err)
		}
		rec[f.Name] = v
	}

	return rec, nil
}

func normalize(kind Kind, raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}

	switch kind {
	case KindInteger:
		return toInt64(raw)
	case KindNumber:
		return toFloat64(raw)
	case KindBoolean:
		b, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("unexpected boolean value %T", raw)
		}
		return b, nil
	case KindDate:
		switch d := raw.(type) {
		case time.Time:
			return d.Format(DateLayout), nil
		case string:
			return d, nil
		}
		return nil, fmt.Errorf("unexpected date value %T", raw)
	case KindString:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected string value %T", raw)
		}
		return s, nil
	}

	return nil, fmt.Errorf("unknown kind %s", kind)
}

func toInt64(raw any) (int64, error) {
	switch n := raw.(type) {
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int:
		return int64(n), nil
	}
	return 0, fmt.Errorf("unexpected integer value %T", raw)
}

func toFloat64(raw any) (float64, error) {
	switch n := raw.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	}
	i, err := toInt64(raw)
	if err != nil {
		return 0, fmt.Errorf("unexpected number value %T", raw)
	}
	return float64(i), nil
}
