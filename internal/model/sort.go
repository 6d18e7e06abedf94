package model

import (
	"encoding/json"
	"strings"
)

// Direction is a whitelisted ORDER BY direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Sort is a normalised ORDER BY directive. Column is always a schema column,
// never client text.
type Sort struct {
	Column    string
	Direction Direction
}

// ParseSort normalises the react-admin sort parameter (`["field","ASC"]`).
//
// The boolean reports whether raw was honoured. Empty, malformed or
// unrecognised input falls back to the schema default order.
func (s *Schema) ParseSort(raw string) (Sort, bool) {
	if strings.TrimSpace(raw) == "" {
		return s.DefaultSort, false
	}

	var parts []string
	if err := json.Unmarshal([]byte(raw), &parts); err != nil || len(parts) != 2 {
		return s.DefaultSort, false
	}

	var column string
	if parts[0] == IDField {
		column = s.IDColumn
	} else if f, ok := s.Field(parts[0]); ok {
		column = f.Column
	} else {
		return s.DefaultSort, false
	}

	switch Direction(strings.ToUpper(parts[1])) {
	case Asc:
		return Sort{Column: column, Direction: Asc}, true
	case Desc:
		return Sort{Column: column, Direction: Desc}, true
	default:
		return s.DefaultSort, false
	}
}
