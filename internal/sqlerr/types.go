package sqlerr

import (
	"fmt"
	"strings"
)

// Code is a friendly category for a PostgreSQL SQLSTATE.
//
// The raw SQLSTATE is always kept next to it (Error.DatabaseCode); the
// category exists so logs and callers can switch on a small, readable set.
type Code string

const (
	Other               Code = "other"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	ExclusionViolation  Code = "exclusion_violation"
	InvalidTextRep      Code = "invalid_text_representation"
	NumericOutOfRange   Code = "numeric_value_out_of_range"
	UndefinedTable      Code = "undefined_table"
	UndefinedColumn     Code = "undefined_column"
	SyntaxError         Code = "syntax_error"
	SerializationFail   Code = "serialization_failure"
	DeadlockDetected    Code = "deadlock_detected"
	InsufficientPriv    Code = "insufficient_privilege"
	TooManyConnections  Code = "too_many_connections"
	AdminShutdown       Code = "admin_shutdown"
)

// sqlStates maps exact SQLSTATE values to categories.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html
var sqlStates = map[string]Code{
	"23502": NotNullViolation,
	"23503": ForeignKeyViolation,
	"23505": UniqueViolation,
	"23514": CheckViolation,
	"23P01": ExclusionViolation,
	"22P02": InvalidTextRep,
	"22003": NumericOutOfRange,
	"42P01": UndefinedTable,
	"42703": UndefinedColumn,
	"42601": SyntaxError,
	"40001": SerializationFail,
	"40P01": DeadlockDetected,
	"42501": InsufficientPriv,
	"53300": TooManyConnections,
	"57P01": AdminShutdown,
}

// MapCode converts a SQLSTATE into a Code. Unknown states map to Other.
func MapCode(sqlstate string) Code {
	if code, ok := sqlStates[strings.ToUpper(sqlstate)]; ok {
		return code
	}
	return Other
}

// Severity mirrors the severity field PostgreSQL attaches to every error.
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

// MapSeverity normalizes the server-provided severity string.
// Localized or unknown values fall back to SeverityError.
func MapSeverity(severity string) Severity {
	switch s := Severity(strings.ToUpper(severity)); s {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return s
	default:
		return SeverityError
	}
}

// Error is our structured copy of a PostgreSQL error.
//
// It keeps the original driver error for Unwrap() so errors.As can still
// reach *pgconn.PgError through it.
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
	return fmt.Sprintf("%s: %s (SQLSTATE %s)", e.Severity, e.Message, e.DatabaseCode)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}
