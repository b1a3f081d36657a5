package service

import (
	"context"

	"github.com/chanakya-dev/campustore/internal/model"
	"github.com/chanakya-dev/campustore/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CategoryService delegates category operations to the repository.
// There is no business rule beyond "absent identifier means not
// found", which the repository already reports.
type CategoryService struct {
	repo   repository.CategoryRepository
	logger *zerolog.Logger
}

// NewCategoryService constructs the category service.
func NewCategoryService(repo repository.CategoryRepository, logger *zerolog.Logger) *CategoryService {
	return &CategoryService{
		repo:   repo,
		logger: logger,
	}
}

// Create persists a new category.
func (s *CategoryService) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	return s.repo.Create(ctx, category)
}

// Get returns a category by id.
func (s *CategoryService) Get(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all categories.
func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

// Update mutates a category in place.
func (s *CategoryService) Update(ctx context.Context, category *model.Category) (*model.Category, error) {
	return s.repo.Update(ctx, category)
}

// Delete removes a category by id.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
