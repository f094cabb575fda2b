package ports

import (
	"context"

	"github.com/shopsmith/ecommerce-api/internal/core/domain"
)

// UserRepository is the user directory consumed by the session resolver and
// the auth service.
type UserRepository interface {
	// FindByID returns the user projection used for session resolution.
	// The password hash is stripped before the record leaves the store.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmail returns the full record including the password hash,
	// for credential verification during login.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts a new user. Duplicate username or email surfaces as
	// domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
