package repository

import (
	"context"
	"errors"

	"authapi/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no user matches the lookup key.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateUsername is returned when a create loses the uniqueness
	// race on users.username.
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepository defines the user directory contract consumed by the auth flow.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
