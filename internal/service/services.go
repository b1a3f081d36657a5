package service

import (
	"github.com/chanakya-dev/campustore/internal/cache"
	"github.com/chanakya-dev/campustore/internal/lib/job"
	"github.com/chanakya-dev/campustore/internal/repository"
	"github.com/chanakya-dev/campustore/internal/server"
)

// Services is the container that groups all service instances. It is
// built once at startup and handed to the handler layer.
type Services struct {
	Auth       *AuthService
	Categories *CategoryService
	Products   *ProductService
	Students   *StudentService
	Users      *UserService
	Job        *job.JobService
}

// NewService constructs the service container, wiring each service to
// its repository and to the shared resources it needs.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	productCache := cache.NewRedisProductCache(s.Redis, s.Logger)

	return &Services{
		Auth:       NewAuthService(s),
		Categories: NewCategoryService(repos.Categories, s.Logger),
		Products:   NewProductService(repos.Products, productCache, s.Logger),
		Students:   NewStudentService(repos.Students, s.Logger),
		Users:      NewUserService(repos.Users, s.Job, s.Logger),
		Job:        s.Job,
	}, nil
}
