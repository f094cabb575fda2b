package ports

import (
	"context"

	"github.com/shopsmith/ecommerce-api/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	// Create inserts a new category. Duplicate name surfaces as
	// domain.ErrCategoryExists.
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	// FindByName is used to reject renames that collide with another category.
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	// List returns all categories sorted by name.
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id string) error
}
