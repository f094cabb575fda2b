package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopsmith/ecommerce-api/internal/core/access"
	"github.com/shopsmith/ecommerce-api/internal/core/domain"
	"github.com/shopsmith/ecommerce-api/internal/core/ports"
)

// CategoryService implements category management. Mutations require the
// admin role; the gate runs here as well as at the router so the rule holds
// even if a route is wired without the middleware.
type CategoryService struct {
	categories ports.CategoryRepository
	products   ports.ProductRepository
	audit      ports.AuditRecorder
	log        zerolog.Logger
}

func NewCategoryService(categories ports.CategoryRepository, products ports.ProductRepository, audit ports.AuditRecorder, log zerolog.Logger) *CategoryService {
	return &CategoryService{categories: categories, products: products, audit: audit, log: log}
}

// List returns all categories sorted by name.
func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

// ProductsByCategory returns a category together with its active products.
func (s *CategoryService) ProductsByCategory(ctx context.Context, id string) (*domain.Category, []*domain.Product, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	products, err := s.products.ListByCategory(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return category, products, nil
}

// Create adds a category. Duplicate names are rejected.
func (s *CategoryService) Create(ctx context.Context, identity access.Identity, input ports.CategoryInput) (*domain.Category, error) {
	if err := access.RequireRole(identity, domain.RoleAdmin); err != nil {
		return nil, err
	}

	if err := s.checkNameFree(ctx, input.Name, ""); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	category := &domain.Category{
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   identity.User.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.categories.Create(ctx, category)
	if err != nil {
		return nil, err
	}

	s.recordAudit(identity, domain.AuditCategoryCreated, created.ID)
	s.log.Info().Str("category_id", created.ID).Str("name", created.Name).Msg("category created")

	return created, nil
}

// Update renames or re-describes a category. The new name must not collide
// with any other category.
func (s *CategoryService) Update(ctx context.Context, identity access.Identity, id string, input ports.CategoryInput) (*domain.Category, error) {
	if err := access.RequireRole(identity, domain.RoleAdmin); err != nil {
		return nil, err
	}

	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkNameFree(ctx, input.Name, id); err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.Description = input.Description
	category.UpdatedAt = time.Now().UTC()

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}

	s.recordAudit(identity, domain.AuditCategoryUpdated, id)

	return category, nil
}

// Delete removes a category unless active products still reference it.
func (s *CategoryService) Delete(ctx context.Context, identity access.Identity, id string) error {
	if err := access.RequireRole(identity, domain.RoleAdmin); err != nil {
		return err
	}

	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return err
	}

	inUse, err := s.products.AnyActiveInCategory(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrCategoryInUse
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}

	s.recordAudit(identity, domain.AuditCategoryDeleted, id)
	s.log.Info().Str("category_id", id).Str("actor_id", identity.User.ID).Msg("category deleted")

	return nil
}

// checkNameFree rejects a name already taken by a category other than excludeID.
func (s *CategoryService) checkNameFree(ctx context.Context, name, excludeID string) error {
	existing, err := s.categories.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != excludeID {
		return domain.ErrCategoryExists
	}
	return nil
}

func (s *CategoryService) recordAudit(identity access.Identity, action, entityID string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		ActorID:    identity.User.ID,
		ActorRole:  identity.User.Role,
		Action:     action,
		EntityKind: "category",
		EntityID:   entityID,
		Timestamp:  time.Now().UTC(),
	})
}
