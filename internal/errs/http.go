package errs

import (
	"net/http"
)

// codeFor derives the default machine code from the HTTP status text.
//
// http.StatusText(409) => "Conflict" => "CONFLICT"
func codeFor(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// This supports extra payload:
//   - code: optional custom code string (if nil, defaults to "BAD_REQUEST")
//   - errors: optional slice of field errors (validation errors)
//
// It is used for payloads the storage layer could never accept:
// malformed JSON, a non-integer path id, missing required fields.
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	formattedCode := codeFor(http.StatusBadRequest)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
//
// The message should name what was looked up, e.g. "Could not find 42".
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Code:    codeFor(http.StatusNotFound),
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewConflictError creates a 409 Conflict HTTPError.
//
// message is the database's own human-readable message and sqlstate its
// native error code, so callers can branch on the code programmatically.
func NewConflictError(message, sqlstate string) *HTTPError {
	return &HTTPError{
		Code:     codeFor(http.StatusConflict),
		Message:  message,
		SQLState: sqlstate,
		Status:   http.StatusConflict,
	}
}

// NewTooManyRequestsError creates a 429 Too Many Requests HTTPError for
// clients over the rate limit.
func NewTooManyRequestsError() *HTTPError {
	return &HTTPError{
		Code:    codeFor(http.StatusTooManyRequests),
		Message: http.StatusText(http.StatusTooManyRequests),
		Status:  http.StatusTooManyRequests,
	}
}

// FromStatus creates an HTTPError for a status raised outside the
// handlers (routing, middleware), using the status text as message when
// none is given.
func FromStatus(status int, message string) *HTTPError {
	if message == "" {
		message = http.StatusText(status)
	}
	return &HTTPError{
		Code:    codeFor(status),
		Message: message,
		Status:  status,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// Note:
//   - message is the generic status text, never the real internal error message.
//   - the underlying cause goes to the operator logs only.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    codeFor(http.StatusInternalServerError),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

// ValidationError converts a generic validation error into a 400 Bad Request HTTPError.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), nil, nil)
}
