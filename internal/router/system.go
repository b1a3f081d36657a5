package router

import (
	"github.com/chanakya-dev/campustore/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes maps the operational endpoints that live
// outside /api: health, docs, and the static assets backing the docs
// UI.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	e.GET("/status", h.Health.CheckHealth)

	// openapi.json and openapi.html live under ./static.
	e.Static("/static", "static")

	e.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
