package ports

import (
	"context"

	"github.com/shopsmith/ecommerce-api/internal/core/access"
	"github.com/shopsmith/ecommerce-api/internal/core/domain"
)

// CreateProductInput carries the fields a caller may set when creating a product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	ImageURL    string
	CategoryID  string
}

// UpdateProductInput mirrors CreateProductInput for full replacement updates.
// CreatedBy and IsActive are never caller-settable.
type UpdateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	ImageURL    string
	CategoryID  string
}

// ProductService defines the catalog use cases. Mutating operations take the
// resolved identity and run the owner-or-admin gate before touching storage.
type ProductService interface {
	List(ctx context.Context) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	ListMine(ctx context.Context, identity access.Identity) ([]*domain.Product, error)
	Create(ctx context.Context, identity access.Identity, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, identity access.Identity, id string, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, identity access.Identity, id string) error
}
