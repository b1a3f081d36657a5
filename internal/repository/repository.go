// Package repository handles all interactions with the database.
//
// Each entity gets a narrow capability interface (create / get / list
// / update / delete by identifier) so any storage backend can be
// substituted behind it, plus a PostgreSQL implementation holding the
// raw SQL. The service layer depends only on the interfaces.
//
// Conventions shared by the implementations:
//   - Identifiers and timestamps are generated by the database and
//     returned via RETURNING clauses.
//   - pgx.ErrNoRows is wrapped as "table:<name>: ..." so the error
//     funnel can produce a 404 naming the missing entity.
//   - Constraint violations surface as pgconn.PgError and are mapped
//     by the sqlerr package; repositories do not inspect them.
package repository

import (
	"context"

	"github.com/chanakya-dev/campustore/internal/model"
	"github.com/google/uuid"
)

// CategoryRepository is the persistence capability for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) (*model.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, category *model.Category) (*model.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository is the persistence capability for products.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// StudentRepository is the persistence capability for students.
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) (*model.Student, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error)
	List(ctx context.Context) ([]model.Student, error)
	Update(ctx context.Context, student *model.Student) (*model.Student, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository is the persistence capability for users.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
