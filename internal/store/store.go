package store

import (
	"context"
	"errors"

	"github.com/akash4797/secure-encryption-decyrption-app/internal/models"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

// Store is the keyed user record store. Username uniqueness is enforced by the
// implementation; a second CreateUser with the same username returns
// ErrDuplicate.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUserProfile(ctx context.Context, username string, fields models.ProfileFields) (*models.User, error)
	Close() error
}
