package ports

import (
	"context"

	"github.com/shopsmith/ecommerce-api/internal/core/domain"
)

// RegisterInput carries the fields needed to create an account. Role is not
// accepted from the outside: every registration produces a regular user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// AuthService implements registration and login. Both return a signed
// identity token alongside the user so the handler can set the session cookie.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
