package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/chanakya-dev/campustore/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[uuid.UUID]model.User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]model.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *model.User) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := *u
	created.ID = uuid.New()
	f.users[created.ID] = created
	return &created, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("table:users: not found")
	}
	return &u, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *model.User) (*model.User, error) {
	f.users[u.ID] = *u
	updated := *u
	return &updated, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

// recordingEnqueuer captures welcome email enqueues.
type recordingEnqueuer struct {
	to        []string
	firstName []string
	err       error
}

func (r *recordingEnqueuer) EnqueueWelcomeEmail(to, firstName string) error {
	if r.err != nil {
		return r.err
	}
	r.to = append(r.to, to)
	r.firstName = append(r.firstName, firstName)
	return nil
}

func TestUserServiceCreateEnqueuesWelcomeEmail(t *testing.T) {
	repo := newFakeUserRepo()
	enq := &recordingEnqueuer{}
	logger := zerolog.Nop()
	svc := NewUserService(repo, enq, &logger)

	created, err := svc.Create(context.Background(), &model.User{
		Email:     "ada@example.com",
		FirstName: "ada",
		LastName:  "lovelace",
	})

	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	require.Len(t, enq.to, 1)
	assert.Equal(t, "ada@example.com", enq.to[0])
	assert.Equal(t, "ada", enq.firstName[0])
}

func TestUserServiceCreateSurvivesEnqueueFailure(t *testing.T) {
	repo := newFakeUserRepo()
	enq := &recordingEnqueuer{err: fmt.Errorf("redis down")}
	logger := zerolog.Nop()
	svc := NewUserService(repo, enq, &logger)

	created, err := svc.Create(context.Background(), &model.User{Email: "a@b.co", FirstName: "A"})

	// The account exists regardless of email delivery.
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestUserServiceCreateNilEnqueuer(t *testing.T) {
	repo := newFakeUserRepo()
	logger := zerolog.Nop()
	svc := NewUserService(repo, nil, &logger)

	_, err := svc.Create(context.Background(), &model.User{Email: "a@b.co"})

	require.NoError(t, err)
}

func TestUserServiceCreateRepoFailureSkipsEnqueue(t *testing.T) {
	repo := newFakeUserRepo()
	repo.err = fmt.Errorf("unique violation")
	enq := &recordingEnqueuer{}
	logger := zerolog.Nop()
	svc := NewUserService(repo, enq, &logger)

	_, err := svc.Create(context.Background(), &model.User{Email: "dup@b.co"})

	require.Error(t, err)
	assert.Empty(t, enq.to)
}
