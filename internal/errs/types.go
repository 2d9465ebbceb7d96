// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures
// (e.g. FieldErrors for payload validation or HTTPError for API responses)
// so every client receives the same, stable error shape:
//
//	{"message": "...", "sqlstate": "23505"}
//
// - Return consistent error shapes to API clients (JSON).
// - Support field-level validation errors for request payloads.
// - Carry the database-native error code (SQLSTATE) for conflicts.
// - Provide errors that play nicely with Go's standard errors package.
package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "channel_name", "error": "is required" }
type FieldError struct {
	// Field is the JSON key the error relates to (e.g. "channel_id").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error().
// Only Message, SQLState and Errors are serialized; Code and Status
// are used by the error handler and by the logs.
//
// Fields:
//   - Code: machine-friendly classification (e.g. "CONFLICT", "NOT_FOUND").
//   - Message: human-friendly message sent to the client.
//   - SQLState: database-native error code, set only for conflicts.
//   - Status: HTTP status code.
//   - Errors: list of per-field errors (validation).
type HTTPError struct {
	Code     string `json:"-"`
	Message  string `json:"message"`
	SQLState string `json:"sqlstate,omitempty"`
	Status   int    `json:"-"`

	// Errors holds field-level validation errors, typically for payload inputs.
	Errors []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
//
// Printing/logging the error shows the client message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is customizes how errors.Is(...) treats HTTPError.
//
// It returns true if `target` is also a *HTTPError. It does NOT compare
// Code/Status; it only checks that the other error is the same type.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a *copy* of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		SQLState: e.SQLState,
		Status:   e.Status,
		Errors:   e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Not Found" -> "NOT_FOUND"
//
// Used to create stable machine-readable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
