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

// PgUserRepository is the PostgreSQL implementation of UserRepository.
type PgUserRepository struct {
	pool *pgxpool.Pool
}

// NewPgUserRepository constructs the user repository.
func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

// Create inserts a user. A duplicate email fails the unique constraint
// and maps to a 400.
func (r *PgUserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`insert into users (email, first_name, last_name)
		 values ($1, $2, $3)
		 returning id, created_at, updated_at`,
		user.Email, user.FirstName, user.LastName,
	)

	created := *user
	if err := row.Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID fetches a single user.
func (r *PgUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`select id, email, first_name, last_name, created_at, updated_at
		 from users
		 where id = $1`,
		id,
	)

	var user model.User
	err := row.Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("table:users: %w", err)
		}
		return nil, err
	}
	return &user, nil
}

// List returns all users, newest first.
func (r *PgUserRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.pool.Query(ctx,
		`select id, email, first_name, last_name, created_at, updated_at
		 from users
		 order by created_at desc`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// Update replaces the mutable fields in place.
func (r *PgUserRepository) Update(ctx context.Context, user *model.User) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`update users
		 set email = $2, first_name = $3, last_name = $4, updated_at = now()
		 where id = $1
		 returning id, email, first_name, last_name, created_at, updated_at`,
		user.ID, user.Email, user.FirstName, user.LastName,
	)

	var updated model.User
	err := row.Scan(&updated.ID, &updated.Email, &updated.FirstName, &updated.LastName, &updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("table:users: %w", err)
		}
		return nil, err
	}
	return &updated, nil
}

// Delete removes the user.
func (r *PgUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `delete from users where id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table:users: %w", pgx.ErrNoRows)
	}
	return nil
}
