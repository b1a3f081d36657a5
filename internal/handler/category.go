package handler

import (
	"github.com/chanakya-dev/campustore/internal/model"
	"github.com/chanakya-dev/campustore/internal/server"
	"github.com/chanakya-dev/campustore/internal/service"
	"github.com/chanakya-dev/campustore/internal/validation"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CategoryHandler serves the /api/categories CRUD endpoints.
type CategoryHandler struct {
	Handler
	categories *service.CategoryService
}

// NewCategoryHandler constructs a CategoryHandler.
func NewCategoryHandler(s *server.Server, services *service.Services) *CategoryHandler {
	return &CategoryHandler{
		Handler:    NewHandler(s),
		categories: services.Categories,
	}
}

// CreateCategoryRequest is the payload for POST /api/categories.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Description string `json:"description" validate:"max=2000"`
}

func (r *CreateCategoryRequest) Validate() error {
	return validation.Struct(r)
}

// GetCategoryRequest binds the path parameter for GET /api/categories/:id.
type GetCategoryRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *GetCategoryRequest) Validate() error {
	return validation.Struct(r)
}

// ListCategoriesRequest is the (empty) payload for GET /api/categories.
type ListCategoriesRequest struct{}

func (r *ListCategoriesRequest) Validate() error {
	return nil
}

// UpdateCategoryRequest is the payload for PUT /api/categories/:id.
type UpdateCategoryRequest struct {
	ID          string `param:"id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Description string `json:"description" validate:"max=2000"`
}

func (r *UpdateCategoryRequest) Validate() error {
	return validation.Struct(r)
}

// DeleteCategoryRequest binds the path parameter for DELETE /api/categories/:id.
type DeleteCategoryRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *DeleteCategoryRequest) Validate() error {
	return validation.Struct(r)
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(c echo.Context, req *CreateCategoryRequest) (*model.Category, error) {
	return h.categories.Create(c.Request().Context(), &model.Category{
		Name:        req.Name,
		Description: req.Description,
	})
}

// Get handles GET /api/categories/:id.
func (h *CategoryHandler) Get(c echo.Context, req *GetCategoryRequest) (*model.Category, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, err
	}
	return h.categories.Get(c.Request().Context(), id)
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(c echo.Context, req *ListCategoriesRequest) ([]model.Category, error) {
	return h.categories.List(c.Request().Context())
}

// Update handles PUT /api/categories/:id.
func (h *CategoryHandler) Update(c echo.Context, req *UpdateCategoryRequest) (*model.Category, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, err
	}
	return h.categories.Update(c.Request().Context(), &model.Category{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
}

// Delete handles DELETE /api/categories/:id.
func (h *CategoryHandler) Delete(c echo.Context, req *DeleteCategoryRequest) error {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return err
	}
	return h.categories.Delete(c.Request().Context(), id)
}
