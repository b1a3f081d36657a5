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

// PgStudentRepository is the PostgreSQL implementation of
// StudentRepository.
type PgStudentRepository struct {
	pool *pgxpool.Pool
}

// NewPgStudentRepository constructs the student repository.
func NewPgStudentRepository(pool *pgxpool.Pool) *PgStudentRepository {
	return &PgStudentRepository{pool: pool}
}

// Create inserts a student. A duplicate email fails the unique
// constraint and maps to a 400.
func (r *PgStudentRepository) Create(ctx context.Context, student *model.Student) (*model.Student, error) {
	row := r.pool.QueryRow(ctx,
		`insert into students (name, email, course, age)
		 values ($1, $2, $3, $4)
		 returning id, created_at, updated_at`,
		student.Name, student.Email, student.Course, student.Age,
	)

	created := *student
	if err := row.Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID fetches a single student.
func (r *PgStudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	row := r.pool.QueryRow(ctx,
		`select id, name, email, course, age, created_at, updated_at
		 from students
		 where id = $1`,
		id,
	)

	var student model.Student
	err := row.Scan(&student.ID, &student.Name, &student.Email, &student.Course, &student.Age, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("table:students: %w", err)
		}
		return nil, err
	}
	return &student, nil
}

// List returns all students, newest first.
func (r *PgStudentRepository) List(ctx context.Context) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`select id, name, email, course, age, created_at, updated_at
		 from students
		 order by created_at desc`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []model.Student{}
	for rows.Next() {
		var student model.Student
		if err := rows.Scan(&student.ID, &student.Name, &student.Email, &student.Course, &student.Age, &student.CreatedAt, &student.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

// Update replaces the mutable fields in place.
func (r *PgStudentRepository) Update(ctx context.Context, student *model.Student) (*model.Student, error) {
	row := r.pool.QueryRow(ctx,
		`update students
		 set name = $2, email = $3, course = $4, age = $5, updated_at = now()
		 where id = $1
		 returning id, name, email, course, age, created_at, updated_at`,
		student.ID, student.Name, student.Email, student.Course, student.Age,
	)

	var updated model.Student
	err := row.Scan(&updated.ID, &updated.Name, &updated.Email, &updated.Course, &updated.Age, &updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("table:students: %w", err)
		}
		return nil, err
	}
	return &updated, nil
}

// Delete removes the student.
func (r *PgStudentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `delete from students where id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table:students: %w", pgx.ErrNoRows)
	}
	return nil
}
