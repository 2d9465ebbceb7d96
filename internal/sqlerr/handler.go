package sqlerr

import (
	"errors"

	"github.com/deppfellow/channeld/internal/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrCode reports the mapped sqlerr.Code for a given error.
//
// Behavior:
//   - If err wraps a *sqlerr.Error, return its Code.
//   - If err wraps a raw *pgconn.PgError, map its SQLSTATE.
//   - Otherwise return sqlerr.Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return MapCode(pgErr.Code)
	}
	return Other
}

// ConvertPgError converts a pgconn.PgError (raw Postgres error) into our custom sqlerr.Error.
//
// pgconn.PgError contains Postgres-specific fields like:
//   - Code (SQLSTATE)
//   - Severity
//   - TableName/ColumnName/ConstraintName etc.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// Describe returns the structured database error carried by err, or nil
// when err has no PostgreSQL descriptor. It is meant for operator logs;
// client-facing decisions go through HandleError.
func Describe(err error) *Error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ConvertPgError(pgErr)
	}
	return nil
}

// HandleError converts a storage-layer error into an application-level error.
//
// Output:
//   - If already *errs.HTTPError: returned unchanged (it was classified before).
//   - If the connection could not be established (*pgconn.ConnectError),
//     including FATAL replies such as too many clients or a refused login:
//     a 500. The server's message names users and hosts.
//   - If err carries a *pgconn.PgError: a 409 Conflict with the database
//     message and its SQLSTATE.
//   - Otherwise: a 500 with a generic message. The cause never reaches the client.
//
// pgx.ErrNoRows is deliberately not special-cased: the only operation that can
// report a missing record (Read) builds its NotFound error itself.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return errs.NewInternalServerError()
	}

	if sqlErr := Describe(err); sqlErr != nil {
		return errs.NewConflictError(sqlErr.Message, sqlErr.DatabaseCode)
	}

	return errs.NewInternalServerError()
}
