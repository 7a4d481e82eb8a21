package fakeuserrepo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/jrsteele09/go-identity-service/internal/errors"
	"github.com/jrsteele09/go-identity-service/users"
)

var _ users.Repo = (*FakeUserRepo)(nil)

// FakeUserRepo is an in-memory user store. It is used by tests and as
// the development store when no database is configured. The single lock
// around Create gives the same insert-if-absent atomicity a unique
// index provides in Postgres.
type FakeUserRepo struct {
	users    map[string]*users.User
	emailIds map[string]string // normalized email to user id
	lock     sync.RWMutex
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{
		users:    make(map[string]*users.User),
		emailIds: make(map[string]string),
	}
}

func (ur *FakeUserRepo) Create(_ context.Context, user *users.User) (*users.User, error) {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	email := users.NormalizeEmail(user.Email)
	if _, exists := ur.emailIds[email]; exists {
		return nil, apperrors.ErrDuplicateEmail
	}

	created := *user
	created.Email = email
	if created.ID == "" {
		created.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now

	ur.users[created.ID] = &created
	ur.emailIds[email] = created.ID
	return copyUser(&created), nil
}

func (ur *FakeUserRepo) GetByEmail(_ context.Context, email string) (*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	id, ok := ur.emailIds[users.NormalizeEmail(email)]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return copyUser(ur.users[id]), nil
}

func (ur *FakeUserRepo) GetByID(_ context.Context, id string) (*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	user, ok := ur.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return copyUser(user), nil
}

// Delete removes a user by email. Used by tests to simulate an account
// vanishing after a token was issued.
func (ur *FakeUserRepo) Delete(email string) {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	id, ok := ur.emailIds[users.NormalizeEmail(email)]
	if !ok {
		return
	}
	delete(ur.emailIds, users.NormalizeEmail(email))
	delete(ur.users, id)
}

func copyUser(u *users.User) *users.User {
	c := *u
	return &c
}
