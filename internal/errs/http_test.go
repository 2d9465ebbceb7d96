package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	custom := "CUSTOM"

	tests := []struct {
		name       string
		err        *HTTPError
		wantStatus int
		wantCode   string
		wantBody   string
	}{
		{
			name:       "bad request",
			err:        NewBadRequestError("Validation failed", nil, []FieldError{{Field: "channel_id", Error: "is required"}}),
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
			wantBody:   `{"message":"Validation failed","errors":[{"field":"channel_id","error":"is required"}]}`,
		},
		{
			name:       "bad request with code",
			err:        NewBadRequestError("nope", &custom, nil),
			wantStatus: http.StatusBadRequest,
			wantCode:   "CUSTOM",
			wantBody:   `{"message":"nope"}`,
		},
		{
			name:       "not found",
			err:        NewNotFoundError("Could not find 42"),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantBody:   `{"message":"Could not find 42"}`,
		},
		{
			name:       "conflict",
			err:        NewConflictError("duplicate key value", "23505"),
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
			wantBody:   `{"message":"duplicate key value","sqlstate":"23505"}`,
		},
		{
			name:       "too many requests",
			err:        NewTooManyRequestsError(),
			wantStatus: http.StatusTooManyRequests,
			wantCode:   "TOO_MANY_REQUESTS",
			wantBody:   `{"message":"Too Many Requests"}`,
		},
		{
			name:       "internal",
			err:        NewInternalServerError(),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
			wantBody:   `{"message":"Internal Server Error"}`,
		},
		{
			name:       "from status with default message",
			err:        FromStatus(http.StatusMethodNotAllowed, ""),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "METHOD_NOT_ALLOWED",
			wantBody:   `{"message":"Method Not Allowed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.Equal(t, tt.wantCode, tt.err.Code)

			body, err := json.Marshal(tt.err)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantBody, string(body))
		})
	}
}

func TestHTTPErrorMatching(t *testing.T) {
	wrapped := fmt.Errorf("channelRepo.GetChannelByID: %w", NewNotFoundError("Could not find 1"))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestWithMessageCopies(t *testing.T) {
	orig := NewConflictError("a", "23505")
	copied := orig.WithMessage("b")

	assert.Equal(t, "a", orig.Message)
	assert.Equal(t, "b", copied.Message)
	assert.Equal(t, "23505", copied.SQLState)
	assert.Equal(t, orig.Status, copied.Status)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores("Not Found"))
	assert.Equal(t, "CONFLICT", MakeUpperCaseWithUnderscores("Conflict"))
}
