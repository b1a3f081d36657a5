// Package router builds the Echo instance: it installs the middleware
// chain, sets the global error handler, and maps the API route groups
// to their handlers.
package router

import (
	"net/http"

	"github.com/chanakya-dev/campustore/internal/handler"
	"github.com/chanakya-dev/campustore/internal/middleware"
	"github.com/labstack/echo/v4"
)

// New assembles a fully configured Echo instance.
//
// Middleware order matters:
//  1. Recover runs first so panics anywhere below become 500s.
//  2. Secure and CORS apply headers before any handler work.
//  3. RequestID assigns correlation IDs used by everything after it.
//  4. New Relic starts the transaction that tracing enrichment and
//     the request-scoped logger attach to.
//  5. Rate limiting runs after identity/tracing so rejected requests
//     are still correlated and traced.
//  6. RequestLogger runs last so it observes the final status.
func New(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(m.Global.Recover())
	e.Use(m.Global.Secure())
	e.Use(m.Global.CORS())
	e.Use(middleware.RequestID())
	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.RateLimit.Limit())
	e.Use(m.Global.RequestLogger())

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, h, m)

	return e
}

// registerAPIRoutes maps the /api resource groups.
func registerAPIRoutes(e *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	api := e.Group("/api")

	categories := api.Group("/categories")
	categories.POST("", handler.Handle(h.Categories.Handler, h.Categories.Create, http.StatusCreated))
	categories.GET("", handler.Handle(h.Categories.Handler, h.Categories.List, http.StatusOK))
	categories.GET("/:id", handler.Handle(h.Categories.Handler, h.Categories.Get, http.StatusOK))
	categories.PUT("/:id", handler.Handle(h.Categories.Handler, h.Categories.Update, http.StatusOK))
	categories.DELETE("/:id", handler.HandleNoContent(h.Categories.Handler, h.Categories.Delete, http.StatusNoContent))

	products := api.Group("/products")
	products.POST("", handler.Handle(h.Products.Handler, h.Products.Create, http.StatusCreated))
	products.GET("", handler.Handle(h.Products.Handler, h.Products.List, http.StatusOK))
	// The export route must precede /:id so "export" is not parsed as
	// a product ID.
	products.GET("/export", handler.HandleFile(h.Products.Handler, h.Products.Export, http.StatusOK, "products.csv", "text/csv"))
	products.GET("/:id", handler.Handle(h.Products.Handler, h.Products.Get, http.StatusOK))
	products.PUT("/:id", handler.Handle(h.Products.Handler, h.Products.Update, http.StatusOK))
	products.DELETE("/:id", handler.HandleNoContent(h.Products.Handler, h.Products.Delete, http.StatusNoContent))

	students := api.Group("/students")
	students.POST("", handler.Handle(h.Students.Handler, h.Students.Create, http.StatusCreated))
	students.GET("", handler.Handle(h.Students.Handler, h.Students.List, http.StatusOK))
	students.GET("/:id", handler.Handle(h.Students.Handler, h.Students.Get, http.StatusOK))
	students.PUT("/:id", handler.Handle(h.Students.Handler, h.Students.Update, http.StatusOK))
	students.DELETE("/:id", handler.HandleNoContent(h.Students.Handler, h.Students.Delete, http.StatusNoContent))

	// Account reads are public; mutations require an authenticated
	// caller.
	users := api.Group("/users")
	users.GET("", handler.Handle(h.Users.Handler, h.Users.List, http.StatusOK))
	users.GET("/:id", handler.Handle(h.Users.Handler, h.Users.Get, http.StatusOK))
	users.POST("", handler.Handle(h.Users.Handler, h.Users.Create, http.StatusCreated), m.Auth.RequireAuth)
	users.PUT("/:id", handler.Handle(h.Users.Handler, h.Users.Update, http.StatusOK), m.Auth.RequireAuth)
	users.DELETE("/:id", handler.HandleNoContent(h.Users.Handler, h.Users.Delete, http.StatusNoContent), m.Auth.RequireAuth)
}
