package handler

import (
	"github.com/chanakya-dev/campustore/internal/model"
	"github.com/chanakya-dev/campustore/internal/server"
	"github.com/chanakya-dev/campustore/internal/service"
	"github.com/chanakya-dev/campustore/internal/validation"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// StudentHandler serves the /api/students CRUD endpoints.
type StudentHandler struct {
	Handler
	students *service.StudentService
}

// NewStudentHandler constructs a StudentHandler.
func NewStudentHandler(s *server.Server, services *service.Services) *StudentHandler {
	return &StudentHandler{
		Handler:  NewHandler(s),
		students: services.Students,
	}
}

// CreateStudentRequest is the payload for POST /api/students.
type CreateStudentRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=255"`
	Email  string `json:"email" validate:"required,email"`
	Course string `json:"course" validate:"required,min=2,max=255"`
	Age    int    `json:"age" validate:"required,gte=1"`
}

func (r *CreateStudentRequest) Validate() error {
	return validation.Struct(r)
}

// GetStudentRequest binds the path parameter for GET /api/students/:id.
type GetStudentRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *GetStudentRequest) Validate() error {
	return validation.Struct(r)
}

// ListStudentsRequest is the (empty) payload for GET /api/students.
type ListStudentsRequest struct{}

func (r *ListStudentsRequest) Validate() error {
	return nil
}

// UpdateStudentRequest is the payload for PUT /api/students/:id.
type UpdateStudentRequest struct {
	ID     string `param:"id" validate:"required,uuid"`
	Name   string `json:"name" validate:"required,min=2,max=255"`
	Email  string `json:"email" validate:"required,email"`
	Course string `json:"course" validate:"required,min=2,max=255"`
	Age    int    `json:"age" validate:"required,gte=1"`
}

func (r *UpdateStudentRequest) Validate() error {
	return validation.Struct(r)
}

// DeleteStudentRequest binds the path parameter for DELETE /api/students/:id.
type DeleteStudentRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *DeleteStudentRequest) Validate() error {
	return validation.Struct(r)
}

// Create handles POST /api/students.
func (h *StudentHandler) Create(c echo.Context, req *CreateStudentRequest) (*model.Student, error) {
	return h.students.Create(c.Request().Context(), &model.Student{
		Name:   req.Name,
		Email:  req.Email,
		Course: req.Course,
		Age:    req.Age,
	})
}

// Get handles GET /api/students/:id.
func (h *StudentHandler) Get(c echo.Context, req *GetStudentRequest) (*model.Student, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, err
	}
	return h.students.Get(c.Request().Context(), id)
}

// List handles GET /api/students.
func (h *StudentHandler) List(c echo.Context, req *ListStudentsRequest) ([]model.Student, error) {
	return h.students.List(c.Request().Context())
}

// Update handles PUT /api/students/:id.
func (h *StudentHandler) Update(c echo.Context, req *UpdateStudentRequest) (*model.Student, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, err
	}
	return h.students.Update(c.Request().Context(), &model.Student{
		ID:     id,
		Name:   req.Name,
		Email:  req.Email,
		Course: req.Course,
		Age:    req.Age,
	})
}

// Delete handles DELETE /api/students/:id.
func (h *StudentHandler) Delete(c echo.Context, req *DeleteStudentRequest) error {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return err
	}
	return h.students.Delete(c.Request().Context(), id)
}
