package handler

import (
	"github.com/chanakya-dev/campustore/internal/server"
	"github.com/chanakya-dev/campustore/internal/service"
)

// Handlers groups every HTTP handler so the router receives a single
// wiring object.
type Handlers struct {
	Health     *HealthHandler
	OpenAPI    *OpenAPIHandler
	Categories *CategoryHandler
	Products   *ProductHandler
	Students   *StudentHandler
	Users      *UserHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:     NewHealthHandler(s),
		OpenAPI:    NewOpenAPIHandler(s),
		Categories: NewCategoryHandler(s, services),
		Products:   NewProductHandler(s, services),
		Students:   NewStudentHandler(s, services),
		Users:      NewUserHandler(s, services),
	}
}
