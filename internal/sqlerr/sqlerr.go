// Package sqlerr translates PostgreSQL driver errors into application errors.
//
// Repositories return driver errors untouched; the global error handler runs
// them through HandleError so a constraint violation reaches the admin UI as
// a readable 400 and anything unexpected as a bare 500.
package sqlerr

import "fmt"

// Code is a coarse category of SQLSTATE values.
type Code string

const (
	Other               Code = "other"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	InvalidText         Code = "invalid_text_representation"
	NumericOutOfRange   Code = "numeric_value_out_of_range"
	UndefinedTable      Code = "undefined_table"
	UndefinedColumn     Code = "undefined_column"
	ConnectionFailure   Code = "connection_failure"
)

// Severity mirrors the PostgreSQL error severity field.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// Error is a normalised PostgreSQL error.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %s (SQLSTATE %s)", e.Severity, e.Message, e.DatabaseCode)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLSTATE to its Code.
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "22P02":
		return InvalidText
	case "22003":
		return NumericOutOfRange
	case "42P01":
		return UndefinedTable
	case "42703":
		return UndefinedColumn
	case "08000", "08003", "08006", "08001", "08004":
		return ConnectionFailure
	default:
		return Other
	}
}

// MapSeverity maps the severity string reported by the server.
func MapSeverity(severity string) Severity {
	switch severity {
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	case "WARNING":
		return SeverityWarning
	case "NOTICE":
		return SeverityNotice
	case "DEBUG":
		return SeverityDebug
	case "INFO":
		return SeverityInfo
	case "LOG":
		return SeverityLog
	default:
		return SeverityError
	}
}
