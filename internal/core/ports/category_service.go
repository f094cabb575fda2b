package ports

import (
	"context"

	"github.com/shopsmith/ecommerce-api/internal/core/access"
	"github.com/shopsmith/ecommerce-api/internal/core/domain"
)

// CategoryInput carries the caller-settable category fields.
type CategoryInput struct {
	Name        string
	Description string
}

// CategoryService defines category use cases. Mutations require the admin
// role; the service enforces the gate even though admin routes are also
// fenced at the router.
type CategoryService interface {
	List(ctx context.Context) ([]*domain.Category, error)
	// ProductsByCategory returns the category and its active products.
	ProductsByCategory(ctx context.Context, id string) (*domain.Category, []*domain.Product, error)
	Create(ctx context.Context, identity access.Identity, input CategoryInput) (*domain.Category, error)
	Update(ctx context.Context, identity access.Identity, id string, input CategoryInput) (*domain.Category, error)
	// Delete removes a category unless active products still reference it.
	Delete(ctx context.Context, identity access.Identity, id string) error
}
