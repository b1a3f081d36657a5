package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/chanakya-dev/campustore/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgProductRepository is the PostgreSQL implementation of
// ProductRepository.
//
// Prices are stored as numeric(12,2). They cross the wire as text in
// both directions so decimal.Decimal round-trips without any float
// conversion in between.
type PgProductRepository struct {
	pool *pgxpool.Pool
}

// NewPgProductRepository constructs the product repository.
func NewPgProductRepository(pool *pgxpool.Pool) *PgProductRepository {
	return &PgProductRepository{pool: pool}
}

// scanProduct reads one product row in the column order used by every
// query in this file.
func scanProduct(row pgx.Row) (*model.Product, error) {
	var (
		product  model.Product
		priceRaw string
	)
	if err := row.Scan(&product.ID, &product.Name, &priceRaw, &product.CategoryID, &product.CreatedAt, &product.UpdatedAt); err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(priceRaw)
	if err != nil {
		return nil, fmt.Errorf("parsing product price %q: %w", priceRaw, err)
	}
	product.Price = price

	return &product, nil
}

// Create inserts a product. A category_id that references no category
// fails the foreign key constraint and maps to a 400.
func (r *PgProductRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	row := r.pool.QueryRow(ctx,
		`insert into products (name, price, category_id)
		 values ($1, $2, $3)
		 returning id, name, price::text, category_id, created_at, updated_at`,
		product.Name, product.Price.String(), product.CategoryID,
	)

	return scanProduct(row)
}

// GetByID fetches a single product.
func (r *PgProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	row := r.pool.QueryRow(ctx,
		`select id, name, price::text, category_id, created_at, updated_at
		 from products
		 where id = $1`,
		id,
	)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("table:products: %w", err)
		}
		return nil, err
	}
	return product, nil
}

// List returns all products, newest first.
func (r *PgProductRepository) List(ctx context.Context) ([]model.Product, error) {
	rows, err := r.pool.Query(ctx,
		`select id, name, price::text, category_id, created_at, updated_at
		 from products
		 order by created_at desc`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	return products, rows.Err()
}

// Update replaces the mutable fields in place.
func (r *PgProductRepository) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	row := r.pool.QueryRow(ctx,
		`update products
		 set name = $2, price = $3, category_id = $4, updated_at = now()
		 where id = $1
		 returning id, name, price::text, category_id, created_at, updated_at`,
		product.ID, product.Name, product.Price.String(), product.CategoryID,
	)

	updated, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("table:products: %w", err)
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes the product.
func (r *PgProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `delete from products where id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table:products: %w", pgx.ErrNoRows)
	}
	return nil
}
