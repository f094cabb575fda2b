package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopsmith/ecommerce-api/internal/core/access"
	"github.com/shopsmith/ecommerce-api/internal/core/domain"
	"github.com/shopsmith/ecommerce-api/internal/core/ports"
)

// CatalogCache abstracts the short-lived product listing cache (Redis).
// A cache failure is never fatal; the service falls through to the store.
type CatalogCache interface {
	// GetProducts returns the cached listing, or (nil, nil) on a miss.
	GetProducts(ctx context.Context) ([]*domain.Product, error)
	SetProducts(ctx context.Context, products []*domain.Product) error
	Invalidate(ctx context.Context) error
}

// ProductService implements the catalog use cases. All mutating operations
// run the owner-or-admin gate against the product's creator before writing.
type ProductService struct {
	products ports.ProductRepository
	cache    CatalogCache
	audit    ports.AuditRecorder
	log      zerolog.Logger
}

func NewProductService(products ports.ProductRepository, cache CatalogCache, audit ports.AuditRecorder, log zerolog.Logger) *ProductService {
	return &ProductService{products: products, cache: cache, audit: audit, log: log}
}

// List returns all active products, newest first, served from the cache
// when a fresh copy exists.
func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	if s.cache != nil {
		cached, err := s.cache.GetProducts(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("product cache read failed, falling back to store")
		} else if cached != nil {
			return cached, nil
		}
	}

	products, err := s.products.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetProducts(ctx, products); err != nil {
			s.log.Warn().Err(err).Msg("product cache write failed")
		}
	}
	return products, nil
}

// Get returns a single active product. An inactive (soft-deleted) product is
// indistinguishable from a missing one.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

// ListMine returns the caller's own active products.
func (s *ProductService) ListMine(ctx context.Context, identity access.Identity) ([]*domain.Product, error) {
	if !identity.Present() {
		return nil, domain.ErrUnauthenticated
	}
	return s.products.ListByOwner(ctx, identity.User.ID)
}

// Create adds a product owned by the caller.
func (s *ProductService) Create(ctx context.Context, identity access.Identity, input ports.CreateProductInput) (*domain.Product, error) {
	if !identity.Present() {
		return nil, domain.ErrUnauthenticated
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
		CategoryID:  input.CategoryID,
		CreatedBy:   identity.User.ID,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.recordAudit(identity, domain.AuditProductCreated, created.ID)
	s.log.Info().Str("product_id", created.ID).Str("created_by", created.CreatedBy).Msg("product created")

	return created, nil
}

// Update replaces the caller-settable fields of a product. Only the creator
// or an admin may update; CreatedBy never changes.
func (s *ProductService) Update(ctx context.Context, identity access.Identity, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.RequireOwnerOrAdmin(identity, product.CreatedBy); err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Stock = input.Stock
	product.CategoryID = input.CategoryID
	if input.ImageURL != "" {
		product.ImageURL = input.ImageURL
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.recordAudit(identity, domain.AuditProductUpdated, product.ID)

	return product, nil
}

// Delete soft-deletes a product after the owner-or-admin gate passes.
func (s *ProductService) Delete(ctx context.Context, identity access.Identity, id string) error {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := access.RequireOwnerOrAdmin(identity, product.CreatedBy); err != nil {
		return err
	}

	if err := s.products.SetActive(ctx, id, false); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	s.recordAudit(identity, domain.AuditProductDeleted, id)
	s.log.Info().Str("product_id", id).Str("actor_id", identity.User.ID).Msg("product soft-deleted")

	return nil
}

func (s *ProductService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("product cache invalidation failed")
	}
}

func (s *ProductService) recordAudit(identity access.Identity, action, entityID string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		ActorID:    identity.User.ID,
		ActorRole:  identity.User.Role,
		Action:     action,
		EntityKind: "product",
		EntityID:   entityID,
		Timestamp:  time.Now().UTC(),
	})
}
