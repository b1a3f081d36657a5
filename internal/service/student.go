package service

import (
	"context"

	"github.com/chanakya-dev/campustore/internal/model"
	"github.com/chanakya-dev/campustore/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// StudentService delegates student operations to the repository.
type StudentService struct {
	repo   repository.StudentRepository
	logger *zerolog.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo repository.StudentRepository, logger *zerolog.Logger) *StudentService {
	return &StudentService{
		repo:   repo,
		logger: logger,
	}
}

// Create persists a new student.
func (s *StudentService) Create(ctx context.Context, student *model.Student) (*model.Student, error) {
	return s.repo.Create(ctx, student)
}

// Get returns a student by id.
func (s *StudentService) Get(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all students.
func (s *StudentService) List(ctx context.Context) ([]model.Student, error) {
	return s.repo.List(ctx)
}

// Update mutates a student in place.
func (s *StudentService) Update(ctx context.Context, student *model.Student) (*model.Student, error) {
	return s.repo.Update(ctx, student)
}

// Delete removes a student by id.
func (s *StudentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
