package users

import "context"

// Repo is the user store contract. Create must be atomic: two
// concurrent inserts with the same email must result in exactly one
// success and one apperrors.ErrDuplicateEmail. GetByEmail and GetByID
// return apperrors.ErrUserNotFound when no user matches.
type Repo interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}
