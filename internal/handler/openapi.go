package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/chanakya-dev/campustore/internal/server"
	"github.com/labstack/echo/v4"
)

// OpenAPIHandler serves the interactive API documentation page. The
// page itself is a static HTML shell that loads the OpenAPI document
// from /static/openapi.json.
type OpenAPIHandler struct {
	Handler
}

// NewOpenAPIHandler constructs an OpenAPIHandler.
func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI serves static/openapi.html. Caching is disabled so
// documentation edits show up without a hard refresh.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")

	page, err := os.ReadFile("static/openapi.html")
	if err != nil {
		return fmt.Errorf("reading OpenAPI UI page: %w", err)
	}

	return c.HTML(http.StatusOK, string(page))
}
