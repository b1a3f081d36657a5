package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/chanakya-dev/campustore/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProductRepo is an in-memory ProductRepository that records calls.
type fakeProductRepo struct {
	products map[uuid.UUID]model.Product
	getCalls int
	err      error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]model.Product)}
}

func (f *fakeProductRepo) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := *p
	created.ID = uuid.New()
	f.products[created.ID] = created
	return &created, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	f.getCalls++
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("table:products: not found")
	}
	return &p, nil
}

func (f *fakeProductRepo) List(ctx context.Context) ([]model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.products[p.ID] = *p
	updated := *p
	return &updated, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	delete(f.products, id)
	return nil
}

// fakeProductCache is an in-memory ProductCache that records calls.
type fakeProductCache struct {
	entries     map[uuid.UUID]*model.Product
	sets        int
	invalidates int
}

func newFakeProductCache() *fakeProductCache {
	return &fakeProductCache{entries: make(map[uuid.UUID]*model.Product)}
}

func (f *fakeProductCache) Get(ctx context.Context, id uuid.UUID) (*model.Product, bool) {
	p, ok := f.entries[id]
	return p, ok
}

func (f *fakeProductCache) Set(ctx context.Context, p *model.Product) {
	f.sets++
	f.entries[p.ID] = p
}

func (f *fakeProductCache) Invalidate(ctx context.Context, id uuid.UUID) {
	f.invalidates++
	delete(f.entries, id)
}

func newProductService(repo *fakeProductRepo, c *fakeProductCache) *ProductService {
	logger := zerolog.Nop()
	return NewProductService(repo, c, &logger)
}

func TestProductServiceCreateWarmsCache(t *testing.T) {
	repo := newFakeProductRepo()
	c := newFakeProductCache()
	svc := newProductService(repo, c)

	created, err := svc.Create(context.Background(), &model.Product{
		Name:  "Notebook",
		Price: decimal.RequireFromString("4.99"),
	})

	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	cached, ok := c.Get(context.Background(), created.ID)
	require.True(t, ok)
	assert.Equal(t, "Notebook", cached.Name)
}

func TestProductServiceGetCacheHitSkipsRepo(t *testing.T) {
	repo := newFakeProductRepo()
	c := newFakeProductCache()
	svc := newProductService(repo, c)

	id := uuid.New()
	c.entries[id] = &model.Product{ID: id, Name: "Cached"}

	got, err := svc.Get(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "Cached", got.Name)
	assert.Zero(t, repo.getCalls)
}

func TestProductServiceGetCacheMissPopulates(t *testing.T) {
	repo := newFakeProductRepo()
	c := newFakeProductCache()
	svc := newProductService(repo, c)

	seeded, err := repo.Create(context.Background(), &model.Product{Name: "Pen"})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), seeded.ID)

	require.NoError(t, err)
	assert.Equal(t, "Pen", got.Name)
	assert.Equal(t, 1, repo.getCalls)

	_, ok := c.Get(context.Background(), seeded.ID)
	assert.True(t, ok, "miss should populate the cache")
}

func TestProductServiceUpdateRefreshesCache(t *testing.T) {
	repo := newFakeProductRepo()
	c := newFakeProductCache()
	svc := newProductService(repo, c)

	seeded, err := repo.Create(context.Background(), &model.Product{Name: "Old"})
	require.NoError(t, err)
	c.entries[seeded.ID] = seeded

	seeded.Name = "New"
	_, err = svc.Update(context.Background(), seeded)

	require.NoError(t, err)
	cached, ok := c.Get(context.Background(), seeded.ID)
	require.True(t, ok)
	assert.Equal(t, "New", cached.Name)
}

func TestProductServiceDeleteInvalidates(t *testing.T) {
	repo := newFakeProductRepo()
	c := newFakeProductCache()
	svc := newProductService(repo, c)

	seeded, err := repo.Create(context.Background(), &model.Product{Name: "Gone"})
	require.NoError(t, err)
	c.entries[seeded.ID] = seeded

	require.NoError(t, svc.Delete(context.Background(), seeded.ID))

	_, ok := c.Get(context.Background(), seeded.ID)
	assert.False(t, ok)
	assert.Equal(t, 1, c.invalidates)
}

func TestProductServiceRepoErrorSkipsCache(t *testing.T) {
	repo := newFakeProductRepo()
	repo.err = fmt.Errorf("boom")
	c := newFakeProductCache()
	svc := newProductService(repo, c)

	_, err := svc.Create(context.Background(), &model.Product{Name: "X"})

	require.Error(t, err)
	assert.Zero(t, c.sets)
}
