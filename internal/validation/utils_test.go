package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/channeld/internal/errs"
	"github.com/deppfellow/channeld/internal/model/channel"
)

func newContext(method, target, body string, params map[string]string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	for name, value := range params {
		c.SetParamNames(append(c.ParamNames(), name)...)
		c.SetParamValues(append(c.ParamValues(), value)...)
	}
	return c
}

func requireBadRequest(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	return httpErr
}

func TestBindAndValidateCreate(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		c := newContext(http.MethodPost, "/channel",
			`{"channel_id":1,"channel_name":"general","guild_id":10,"guild_name":"Guild","added_by":99}`, nil)
		var p channel.CreateChannelPayload

		require.NoError(t, BindAndValidate(c, &p))
		assert.Equal(t, int64(1), *p.ChannelID)
		assert.Nil(t, p.Suppress)
	})

	t.Run("malformed json", func(t *testing.T) {
		c := newContext(http.MethodPost, "/channel", `{"channel_id":`, nil)

		httpErr := requireBadRequest(t, BindAndValidate(c, &channel.CreateChannelPayload{}))
		assert.NotEmpty(t, httpErr.Message)
		assert.Empty(t, httpErr.Errors)
	})

	t.Run("wrong field type", func(t *testing.T) {
		c := newContext(http.MethodPost, "/channel", `{"channel_id":"one"}`, nil)

		httpErr := requireBadRequest(t, BindAndValidate(c, &channel.CreateChannelPayload{}))
		assert.Contains(t, httpErr.Message, "channel_id")
	})

	t.Run("missing fields are listed", func(t *testing.T) {
		c := newContext(http.MethodPost, "/channel", `{"channel_id":1,"guild_id":10}`, nil)

		httpErr := requireBadRequest(t, BindAndValidate(c, &channel.CreateChannelPayload{}))
		assert.Equal(t, "Validation failed", httpErr.Message)
		assert.ElementsMatch(t, []errs.FieldError{
			{Field: "channel_name", Error: "is required"},
			{Field: "guild_name", Error: "is required"},
			{Field: "added_by", Error: "is required"},
		}, httpErr.Errors)
	})
}

func TestBindAndValidatePathParam(t *testing.T) {
	t.Run("integer id", func(t *testing.T) {
		c := newContext(http.MethodGet, "/channel/42", "", map[string]string{"channel_id": "42"})
		var p channel.GetChannelPayload

		require.NoError(t, BindAndValidate(c, &p))
		assert.Equal(t, int64(42), p.ChannelID)
	})

	t.Run("non integer id", func(t *testing.T) {
		c := newContext(http.MethodDelete, "/channel/abc", "", map[string]string{"channel_id": "abc"})

		httpErr := requireBadRequest(t, BindAndValidate(c, &channel.DeleteChannelPayload{}))
		assert.Contains(t, httpErr.Message, `"abc"`)
	})

	t.Run("out of range id", func(t *testing.T) {
		c := newContext(http.MethodGet, "/channel/99999999999999999999", "",
			map[string]string{"channel_id": "99999999999999999999"})

		requireBadRequest(t, BindAndValidate(c, &channel.GetChannelPayload{}))
	})

	t.Run("update takes id from path and suppress from body", func(t *testing.T) {
		c := newContext(http.MethodPut, "/channel/7", `{"suppress":false,"channel_id":8}`,
			map[string]string{"channel_id": "7"})
		var p channel.UpdateChannelPayload

		require.NoError(t, BindAndValidate(c, &p))
		assert.Equal(t, int64(7), p.ChannelID)
		require.NotNil(t, p.Suppress)
		assert.False(t, *p.Suppress)
	})
}

type customPayload struct{ err error }

func (p *customPayload) Validate() error { return p.err }

func TestExtractValidationError(t *testing.T) {
	t.Run("custom errors", func(t *testing.T) {
		msg, fields := extractValidationError(CustomValidationErrors{
			{Field: "suppress", Message: "must be a boolean"},
		})

		assert.Equal(t, "Validation failed", msg)
		assert.Equal(t, []errs.FieldError{{Field: "suppress", Error: "must be a boolean"}}, fields)
	})

	t.Run("unknown error type does not panic", func(t *testing.T) {
		msg, fields := extractValidationError(errors.New("boom"))

		assert.Equal(t, "Validation failed: boom", msg)
		assert.NotNil(t, fields)
	})

	t.Run("through BindAndValidate", func(t *testing.T) {
		c := newContext(http.MethodPost, "/x", `{}`, nil)

		httpErr := requireBadRequest(t, BindAndValidate(c, &customPayload{err: errors.New("boom")}))
		assert.Equal(t, "Validation failed: boom", httpErr.Message)
	})
}
