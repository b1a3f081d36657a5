package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chanakya-dev/campustore/internal/config"
	"github.com/chanakya-dev/campustore/internal/errs"
	"github.com/chanakya-dev/campustore/internal/middleware"
	"github.com/chanakya-dev/campustore/internal/model"
	"github.com/chanakya-dev/campustore/internal/server"
	"github.com/chanakya-dev/campustore/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCategoryRepo is an in-memory CategoryRepository.
type fakeCategoryRepo struct {
	categories map[uuid.UUID]model.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]model.Category)}
}

func (f *fakeCategoryRepo) Create(ctx context.Context, c *model.Category) (*model.Category, error) {
	created := *c
	created.ID = uuid.New()
	f.categories[created.ID] = created
	return &created, nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, fmt.Errorf("table:categories: %w", pgx.ErrNoRows)
	}
	return &c, nil
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	out := make([]model.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, c *model.Category) (*model.Category, error) {
	if _, ok := f.categories[c.ID]; !ok {
		return nil, fmt.Errorf("table:categories: %w", pgx.ErrNoRows)
	}
	f.categories[c.ID] = *c
	updated := *c
	return &updated, nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.categories[id]; !ok {
		return fmt.Errorf("table:categories: %w", pgx.ErrNoRows)
	}
	delete(f.categories, id)
	return nil
}

// fakeProductRepo is an in-memory ProductRepository.
type fakeProductRepo struct {
	products []model.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	created := *p
	created.ID = uuid.New()
	f.products = append(f.products, created)
	return &created, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("table:products: %w", pgx.ErrNoRows)
}

func (f *fakeProductRepo) List(ctx context.Context) ([]model.Product, error) {
	return append([]model.Product(nil), f.products...), nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	for i := range f.products {
		if f.products[i].ID == p.ID {
			f.products[i] = *p
			updated := *p
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("table:products: %w", pgx.ErrNoRows)
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("table:products: %w", pgx.ErrNoRows)
}

// noopCache satisfies cache.ProductCache without storing anything.
type noopCache struct{}

func (noopCache) Get(ctx context.Context, id uuid.UUID) (*model.Product, bool) { return nil, false }
func (noopCache) Set(ctx context.Context, p *model.Product)                    {}
func (noopCache) Invalidate(ctx context.Context, id uuid.UUID)                 {}

// newTestApp wires an Echo instance with real routing, the global error
// handler, and in-memory repositories behind the real services.
func newTestApp(t *testing.T) (*echo.Echo, *fakeCategoryRepo, *fakeProductRepo) {
	t.Helper()

	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{},
		Logger: &logger,
	}

	categoryRepo := newFakeCategoryRepo()
	productRepo := &fakeProductRepo{}

	services := &service.Services{
		Categories: service.NewCategoryService(categoryRepo, &logger),
		Products:   service.NewProductService(productRepo, noopCache{}, &logger),
	}

	h := &CategoryHandler{Handler: NewHandler(s), categories: services.Categories}
	ph := &ProductHandler{Handler: NewHandler(s), products: services.Products}

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(s).GlobalErrorHandler

	e.POST("/api/categories", Handle(h.Handler, h.Create, http.StatusCreated))
	e.GET("/api/categories", Handle(h.Handler, h.List, http.StatusOK))
	e.GET("/api/categories/:id", Handle(h.Handler, h.Get, http.StatusOK))
	e.PUT("/api/categories/:id", Handle(h.Handler, h.Update, http.StatusOK))
	e.DELETE("/api/categories/:id", HandleNoContent(h.Handler, h.Delete, http.StatusNoContent))

	e.POST("/api/products", Handle(ph.Handler, ph.Create, http.StatusCreated))
	e.GET("/api/products/export", HandleFile(ph.Handler, ph.Export, http.StatusOK, "products.csv", "text/csv"))
	e.GET("/api/products/:id", Handle(ph.Handler, ph.Get, http.StatusOK))

	return e, categoryRepo, productRepo
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var out errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestCreateCategory(t *testing.T) {
	e, _, _ := newTestApp(t)

	rec := doJSON(e, http.MethodPost, "/api/categories", `{"name":"Stationery","description":"Pens and paper"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Stationery", created.Name)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestCreateCategoryValidation(t *testing.T) {
	e, _, _ := newTestApp(t)

	rec := doJSON(e, http.MethodPost, "/api/categories", `{"name":"S"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeError(t, rec)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "name", body.Errors[0].Field)
}

func TestGetCategoryNotFound(t *testing.T) {
	e, _, _ := newTestApp(t)

	rec := doJSON(e, http.MethodGet, "/api/categories/"+uuid.NewString(), "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Category not found", body.Message)
}

func TestGetCategoryBadID(t *testing.T) {
	e, _, _ := newTestApp(t)

	rec := doJSON(e, http.MethodGet, "/api/categories/not-a-uuid", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "id", body.Errors[0].Field)
}

func TestUpdateCategory(t *testing.T) {
	e, repo, _ := newTestApp(t)

	seeded, err := repo.Create(context.Background(), &model.Category{Name: "Old"})
	require.NoError(t, err)

	rec := doJSON(e, http.MethodPut, "/api/categories/"+seeded.ID.String(), `{"name":"Renamed"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var updated model.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Renamed", updated.Name)
}

func TestDeleteCategory(t *testing.T) {
	e, repo, _ := newTestApp(t)

	seeded, err := repo.Create(context.Background(), &model.Category{Name: "Doomed"})
	require.NoError(t, err)

	rec := doJSON(e, http.MethodDelete, "/api/categories/"+seeded.ID.String(), "")

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, repo.categories)
}

func TestRouteNotFound(t *testing.T) {
	e, _, _ := newTestApp(t)

	rec := doJSON(e, http.MethodGet, "/api/nope", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Route not found", body.Message)
}

func TestCreateProduct(t *testing.T) {
	e, _, _ := newTestApp(t)

	categoryID := uuid.NewString()
	rec := doJSON(e, http.MethodPost, "/api/products",
		`{"name":"Notebook","price":"4.99","category_id":"`+categoryID+`"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.True(t, created.Price.Equal(decimal.RequireFromString("4.99")))
	assert.Equal(t, categoryID, created.CategoryID.String())
}

func TestCreateProductInvalidPrice(t *testing.T) {
	tests := []struct {
		name  string
		price string
	}{
		{"non-numeric", "four dollars"},
		{"negative", "-4.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, _ := newTestApp(t)

			rec := doJSON(e, http.MethodPost, "/api/products",
				`{"name":"Notebook","price":"`+tt.price+`","category_id":"`+uuid.NewString()+`"}`)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeError(t, rec)
			require.Len(t, body.Errors, 1)
			assert.Equal(t, "price", body.Errors[0].Field)
		})
	}
}

func TestExportProductsCSV(t *testing.T) {
	e, _, productRepo := newTestApp(t)

	seeded, err := productRepo.Create(context.Background(), &model.Product{
		Name:       "Notebook",
		Price:      decimal.RequireFromString("4.99"),
		CategoryID: uuid.New(),
	})
	require.NoError(t, err)

	rec := doJSON(e, http.MethodGet, "/api/products/export", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "attachment; filename=products.csv", rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/csv")

	body := strings.ReplaceAll(rec.Body.String(), "\r\n", "\n")
	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,name,price,category_id,created_at", lines[0])
	assert.Contains(t, lines[1], seeded.ID.String())
	assert.Contains(t, lines[1], "4.99")
}

func TestParsePrice(t *testing.T) {
	got, err := parsePrice("19.90")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("19.9")))

	_, err = parsePrice("abc")
	require.Error(t, err)

	_, err = parsePrice("-0.01")
	require.Error(t, err)
}
