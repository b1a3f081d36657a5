package repository

import (
	"github.com/chanakya-dev/campustore/internal/server"
)

// Repositories is the container that groups all repository instances.
// The fields are interfaces so tests and services never see the
// concrete PostgreSQL types.
type Repositories struct {
	Categories CategoryRepository
	Products   ProductRepository
	Students   StudentRepository
	Users      UserRepository
}

// NewRepositories constructs the repository container from the shared
// application resources (the pgx pool lives on s.DB).
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Categories: NewPgCategoryRepository(s.DB.Pool),
		Products:   NewPgProductRepository(s.DB.Pool),
		Students:   NewPgStudentRepository(s.DB.Pool),
		Users:      NewPgUserRepository(s.DB.Pool),
	}
}
