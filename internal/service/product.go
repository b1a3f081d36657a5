package service

import (
	"context"

	"github.com/chanakya-dev/campustore/internal/cache"
	"github.com/chanakya-dev/campustore/internal/model"
	"github.com/chanakya-dev/campustore/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ProductService delegates product operations to the repository and
// coordinates the Redis read cache.
//
// Cache discipline: Get is read-through (miss populates), Update and
// Delete invalidate before returning, Create pre-warms. List always
// hits the database; caching collections invites staleness for no
// measurable win at this scale.
type ProductService struct {
	repo   repository.ProductRepository
	cache  cache.ProductCache
	logger *zerolog.Logger
}

// NewProductService constructs the product service.
func NewProductService(repo repository.ProductRepository, productCache cache.ProductCache, logger *zerolog.Logger) *ProductService {
	return &ProductService{
		repo:   repo,
		cache:  productCache,
		logger: logger,
	}
}

// Create persists a new product and warms the cache with it.
func (s *ProductService) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, created)
	return created, nil
}

// Get returns a product by id, serving from the cache when possible.
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	if product, ok := s.cache.Get(ctx, id); ok {
		s.logger.Debug().Str("product_id", id.String()).Msg("product cache hit")
		return product, nil
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, product)
	return product, nil
}

// List returns all products straight from the database.
func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	return s.repo.List(ctx)
}

// Update mutates a product in place and refreshes the cached entry.
func (s *ProductService) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, updated)
	return updated, nil
}

// Delete removes a product and drops its cached entry.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, id)
	return nil
}
