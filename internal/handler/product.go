package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/chanakya-dev/campustore/internal/model"
	"github.com/chanakya-dev/campustore/internal/server"
	"github.com/chanakya-dev/campustore/internal/service"
	"github.com/chanakya-dev/campustore/internal/validation"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ProductHandler serves the /api/products CRUD endpoints plus the CSV
// export.
type ProductHandler struct {
	Handler
	products *service.ProductService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(s *server.Server, services *service.Services) *ProductHandler {
	return &ProductHandler{
		Handler:  NewHandler(s),
		products: services.Products,
	}
}

// parsePrice validates and converts the client-supplied price string.
// Prices travel as strings in the JSON API so clients are never tempted
// to send floats.
func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, validation.CustomValidationErrors{
			{Field: "price", Message: "must be a decimal number"},
		}
	}
	if price.IsNegative() {
		return decimal.Zero, validation.CustomValidationErrors{
			{Field: "price", Message: "must not be negative"},
		}
	}
	return price, nil
}

// CreateProductRequest is the payload for POST /api/products.
type CreateProductRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=255"`
	Price      string `json:"price" validate:"required"`
	CategoryID string `json:"category_id" validate:"required,uuid"`
}

func (r *CreateProductRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	// Tag validation cannot express "parses as a non-negative decimal".
	_, err := parsePrice(r.Price)
	return err
}

// GetProductRequest binds the path parameter for GET /api/products/:id.
type GetProductRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *GetProductRequest) Validate() error {
	return validation.Struct(r)
}

// ListProductsRequest is the (empty) payload for GET /api/products.
type ListProductsRequest struct{}

func (r *ListProductsRequest) Validate() error {
	return nil
}

// ExportProductsRequest is the (empty) payload for the CSV export.
type ExportProductsRequest struct{}

func (r *ExportProductsRequest) Validate() error {
	return nil
}

// UpdateProductRequest is the payload for PUT /api/products/:id.
type UpdateProductRequest struct {
	ID         string `param:"id" validate:"required,uuid"`
	Name       string `json:"name" validate:"required,min=2,max=255"`
	Price      string `json:"price" validate:"required"`
	CategoryID string `json:"category_id" validate:"required,uuid"`
}

func (r *UpdateProductRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	_, err := parsePrice(r.Price)
	return err
}

// DeleteProductRequest binds the path parameter for DELETE /api/products/:id.
type DeleteProductRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *DeleteProductRequest) Validate() error {
	return validation.Struct(r)
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(c echo.Context, req *CreateProductRequest) (*model.Product, error) {
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, err
	}

	return h.products.Create(c.Request().Context(), &model.Product{
		Name:       req.Name,
		Price:      price,
		CategoryID: categoryID,
	})
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c echo.Context, req *GetProductRequest) (*model.Product, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, err
	}
	return h.products.Get(c.Request().Context(), id)
}

// List handles GET /api/products.
func (h *ProductHandler) List(c echo.Context, req *ListProductsRequest) ([]model.Product, error) {
	return h.products.List(c.Request().Context())
}

// Update handles PUT /api/products/:id.
func (h *ProductHandler) Update(c echo.Context, req *UpdateProductRequest) (*model.Product, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, err
	}
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, err
	}

	return h.products.Update(c.Request().Context(), &model.Product{
		ID:         id,
		Name:       req.Name,
		Price:      price,
		CategoryID: categoryID,
	})
}

// Delete handles DELETE /api/products/:id.
func (h *ProductHandler) Delete(c echo.Context, req *DeleteProductRequest) error {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return err
	}
	return h.products.Delete(c.Request().Context(), id)
}

// Export handles GET /api/products/export, returning the catalogue as
// a CSV download.
func (h *ProductHandler) Export(c echo.Context, req *ExportProductsRequest) ([]byte, error) {
	products, err := h.products.List(c.Request().Context())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "name", "price", "category_id", "created_at"}); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}
	for _, p := range products {
		record := []string{
			p.ID.String(),
			p.Name,
			p.Price.String(),
			p.CategoryID.String(),
			p.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("writing csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}

	return buf.Bytes(), nil
}
