package service

import (
	"context"

	"github.com/chanakya-dev/campustore/internal/model"
	"github.com/chanakya-dev/campustore/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WelcomeEmailEnqueuer is the slice of the job service the user
// service needs. Tests substitute a recording fake.
type WelcomeEmailEnqueuer interface {
	EnqueueWelcomeEmail(to, firstName string) error
}

// UserService delegates user operations to the repository and enqueues
// a welcome email after a successful create.
type UserService struct {
	repo     repository.UserRepository
	enqueuer WelcomeEmailEnqueuer
	logger   *zerolog.Logger
}

// NewUserService constructs the user service. enqueuer may be nil, in
// which case no welcome emails are sent.
func NewUserService(repo repository.UserRepository, enqueuer WelcomeEmailEnqueuer, logger *zerolog.Logger) *UserService {
	return &UserService{
		repo:     repo,
		enqueuer: enqueuer,
		logger:   logger,
	}
}

// Create persists a new user and enqueues the welcome email.
//
// A failed enqueue does not fail the request: the account exists
// either way, and losing one greeting beats surfacing a 500 for a
// Redis hiccup. The failure is logged for follow-up.
func (s *UserService) Create(ctx context.Context, user *model.User) (*model.User, error) {
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	if s.enqueuer != nil {
		if err := s.enqueuer.EnqueueWelcomeEmail(created.Email, created.FirstName); err != nil {
			s.logger.Error().
				Err(err).
				Str("user_id", created.ID.String()).
				Msg("failed to enqueue welcome email")
		}
	}

	return created, nil
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// Update mutates a user in place.
func (s *UserService) Update(ctx context.Context, user *model.User) (*model.User, error) {
	return s.repo.Update(ctx, user)
}

// Delete removes a user by id.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
