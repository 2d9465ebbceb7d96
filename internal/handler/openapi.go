package handler

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/channeld/internal/server"
)

//go:embed static/openapi.json
var openAPIDocument []byte

//go:embed static/openapi.html
var openAPIUI string

// OpenAPIHandler serves the API description and a small UI to try it.
// Both files are embedded in the binary.
type OpenAPIHandler struct {
	Handler
}

// NewOpenAPIHandler constructs an OpenAPIHandler with access to shared dependencies.
func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIDocument writes the OpenAPI 3 document describing the channel routes.
func (h *OpenAPIHandler) ServeOpenAPIDocument(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, openAPIDocument)
}

// ServeOpenAPIUI serves the docs page, which loads /openapi.json.
//
// Cache-Control is set to "no-cache" so clients do not reuse old docs UI.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")

	if err := c.HTML(http.StatusOK, openAPIUI); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
