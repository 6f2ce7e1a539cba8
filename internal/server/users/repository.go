package users

import (
	"context"
)

// Repository is the credential store abstraction. GetByUsername returns
// common.ErrorNotFound on a miss; Create returns common.ErrUsernameTaken
// when the username is already present.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
}
