package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/chanakya-dev/campustore/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgCategoryRepository is the PostgreSQL implementation of
// CategoryRepository.
type PgCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewPgCategoryRepository constructs the category repository.
func NewPgCategoryRepository(pool *pgxpool.Pool) *PgCategoryRepository {
	return &PgCategoryRepository{pool: pool}
}

// Create inserts a category; id and timestamps come back from the
// database.
func (r *PgCategoryRepository) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	row := r.pool.QueryRow(ctx,
		`insert into categories (name, description)
		 values ($1, $2)
		 returning id, created_at, updated_at`,
		category.Name, category.Description,
	)

	created := *category
	if err := row.Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID fetches a single category.
func (r *PgCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	row := r.pool.QueryRow(ctx,
		`select id, name, description, created_at, updated_at
		 from categories
		 where id = $1`,
		id,
	)

	var category model.Category
	err := row.Scan(&category.ID, &category.Name, &category.Description, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("table:categories: %w", err)
		}
		return nil, err
	}
	return &category, nil
}

// List returns all categories, newest first.
func (r *PgCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.pool.Query(ctx,
		`select id, name, description, created_at, updated_at
		 from categories
		 order by created_at desc`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var category model.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Description, &category.CreatedAt, &category.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// Update replaces the mutable fields in place.
func (r *PgCategoryRepository) Update(ctx context.Context, category *model.Category) (*model.Category, error) {
	row := r.pool.QueryRow(ctx,
		`update categories
		 set name = $2, description = $3, updated_at = now()
		 where id = $1
		 returning id, name, description, created_at, updated_at`,
		category.ID, category.Name, category.Description,
	)

	var updated model.Category
	err := row.Scan(&updated.ID, &updated.Name, &updated.Description, &updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("table:categories: %w", err)
		}
		return nil, err
	}
	return &updated, nil
}

// Delete removes the category. Deleting a category that still has
// products fails with a foreign key violation, which the error funnel
// turns into a 400.
func (r *PgCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `delete from categories where id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table:categories: %w", pgx.ErrNoRows)
	}
	return nil
}
