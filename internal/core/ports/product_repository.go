package ports

import (
	"context"

	"github.com/shopsmith/ecommerce-api/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	// FindByID returns the product regardless of its active flag; callers
	// decide whether an inactive product counts as absent.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// ListActive returns active products, newest first.
	ListActive(ctx context.Context) ([]*domain.Product, error)
	// ListByOwner returns the owner's active products, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Product, error)
	// ListByCategory returns active products in a category, newest first.
	ListByCategory(ctx context.Context, categoryID string) ([]*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	// SetActive flips the soft-delete flag.
	SetActive(ctx context.Context, id string, active bool) error
	// AnyActiveInCategory reports whether any active product references the category.
	AnyActiveInCategory(ctx context.Context, categoryID string) (bool, error)
}
