package handler

import (
	"github.com/chanakya-dev/campustore/internal/model"
	"github.com/chanakya-dev/campustore/internal/server"
	"github.com/chanakya-dev/campustore/internal/service"
	"github.com/chanakya-dev/campustore/internal/validation"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserHandler serves the /api/users CRUD endpoints. Mutating routes
// sit behind authentication; see the router for the exact split.
type UserHandler struct {
	Handler
	users *service.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(s *server.Server, services *service.Services) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   services.Users,
	}
}

// CreateUserRequest is the payload for POST /api/users.
type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,min=1,max=255"`
	LastName  string `json:"last_name" validate:"required,min=1,max=255"`
}

func (r *CreateUserRequest) Validate() error {
	return validation.Struct(r)
}

// GetUserRequest binds the path parameter for GET /api/users/:id.
type GetUserRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *GetUserRequest) Validate() error {
	return validation.Struct(r)
}

// ListUsersRequest is the (empty) payload for GET /api/users.
type ListUsersRequest struct{}

func (r *ListUsersRequest) Validate() error {
	return nil
}

// UpdateUserRequest is the payload for PUT /api/users/:id.
type UpdateUserRequest struct {
	ID        string `param:"id" validate:"required,uuid"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,min=1,max=255"`
	LastName  string `json:"last_name" validate:"required,min=1,max=255"`
}

func (r *UpdateUserRequest) Validate() error {
	return validation.Struct(r)
}

// DeleteUserRequest binds the path parameter for DELETE /api/users/:id.
type DeleteUserRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *DeleteUserRequest) Validate() error {
	return validation.Struct(r)
}

// Create handles POST /api/users. A welcome email is enqueued for the
// new account; delivery failures do not affect the response.
func (h *UserHandler) Create(c echo.Context, req *CreateUserRequest) (*model.User, error) {
	return h.users.Create(c.Request().Context(), &model.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c echo.Context, req *GetUserRequest) (*model.User, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, err
	}
	return h.users.Get(c.Request().Context(), id)
}

// List handles GET /api/users.
func (h *UserHandler) List(c echo.Context, req *ListUsersRequest) ([]model.User, error) {
	return h.users.List(c.Request().Context())
}

// Update handles PUT /api/users/:id.
func (h *UserHandler) Update(c echo.Context, req *UpdateUserRequest) (*model.User, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, err
	}
	return h.users.Update(c.Request().Context(), &model.User{
		ID:        id,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
}

// Delete handles DELETE /api/users/:id.
func (h *UserHandler) Delete(c echo.Context, req *DeleteUserRequest) error {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return err
	}
	return h.users.Delete(c.Request().Context(), id)
}
