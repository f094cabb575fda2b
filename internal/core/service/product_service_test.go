package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shopsmith/ecommerce-api/internal/core/access"
	"github.com/shopsmith/ecommerce-api/internal/core/domain"
	"github.com/shopsmith/ecommerce-api/internal/core/ports"
)

func identityFor(id, role string) access.Identity {
	return access.Identity{User: &domain.User{ID: id, Role: role}}
}

func seedProduct(t *testing.T, svc *ProductService, ownerID string) *domain.Product {
	t.Helper()
	created, err := svc.Create(context.Background(), identityFor(ownerID, domain.RoleUser), ports.CreateProductInput{
		Name:       "widget",
		Price:      9.99,
		Stock:      3,
		CategoryID: "cat_1",
	})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return created
}

func TestProductService_CreateRequiresIdentity(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), nil, nil, zerolog.Nop())

	_, err := svc.Create(context.Background(), access.Absent, ports.CreateProductInput{Name: "widget"})
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestProductService_CreateSetsOwner(t *testing.T) {
	repo := newStubProductRepo()
	audit := &stubAudit{}
	svc := NewProductService(repo, nil, audit, zerolog.Nop())

	created := seedProduct(t, svc, "user_1")
	if created.CreatedBy != "user_1" {
		t.Fatalf("expected owner user_1, got %s", created.CreatedBy)
	}
	if !created.IsActive {
		t.Fatalf("new product should be active")
	}

	got := audit.actions()
	if len(got) != 1 || got[0] != domain.AuditProductCreated {
		t.Fatalf("expected creation audit event, got %v", got)
	}
}

func TestProductService_UpdateOwnership(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, nil, nil, zerolog.Nop())
	created := seedProduct(t, svc, "user_1")

	input := ports.UpdateProductInput{Name: "renamed", Price: 19.99, Stock: 1, CategoryID: created.CategoryID}

	tests := []struct {
		name     string
		identity access.Identity
		want     error
	}{
		{"owner may update", identityFor("user_1", domain.RoleUser), nil},
		{"other user forbidden", identityFor("user_2", domain.RoleUser), domain.ErrForbidden},
		{"admin may update", identityFor("user_3", domain.RoleAdmin), nil},
		{"absent unauthenticated", access.Absent, domain.ErrUnauthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), tt.identity, created.ID, input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	// Ownership never transfers on update.
	updated, err := repo.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if updated.CreatedBy != "user_1" {
		t.Fatalf("owner changed to %s", updated.CreatedBy)
	}
}

func TestProductService_UpdateKeepsImageWhenOmitted(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, nil, nil, zerolog.Nop())

	owner := identityFor("user_1", domain.RoleUser)
	created, err := svc.Create(context.Background(), owner, ports.CreateProductInput{
		Name: "widget", Price: 9.99, ImageURL: "https://img.example.com/widget.png",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), owner, created.ID, ports.UpdateProductInput{Name: "widget v2", Price: 10.99})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ImageURL != "https://img.example.com/widget.png" {
		t.Fatalf("image url lost on update: %q", updated.ImageURL)
	}
}

func TestProductService_DeleteIsSoft(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, nil, nil, zerolog.Nop())
	created := seedProduct(t, svc, "user_1")

	if err := svc.Delete(context.Background(), identityFor("user_2", domain.RoleUser), created.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	if err := svc.Delete(context.Background(), identityFor("user_1", domain.RoleUser), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// The record survives but is invisible through Get and listings.
	stored, err := repo.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("record should survive soft delete: %v", err)
	}
	if stored.IsActive {
		t.Fatalf("product still active after delete")
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound for deleted product, got %v", err)
	}
	listed, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("deleted product still listed: %v", listed)
	}
}

func TestProductService_ListMineRequiresIdentity(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), nil, nil, zerolog.Nop())

	if _, err := svc.ListMine(context.Background(), access.Absent); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestProductService_ListServedFromCache(t *testing.T) {
	repo := newStubProductRepo()
	cache := &stubCache{entry: []*domain.Product{{ID: "cached", Name: "cached"}}}
	repo.listErr = errors.New("store should not be hit on a cache hit")
	svc := NewProductService(repo, cache, nil, zerolog.Nop())

	listed, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != "cached" {
		t.Fatalf("expected cached listing, got %v", listed)
	}
}

func TestProductService_ListFallsBackOnCacheError(t *testing.T) {
	repo := newStubProductRepo()
	cache := &stubCache{getErr: errors.New("redis down")}
	svc := NewProductService(repo, cache, nil, zerolog.Nop())
	seedProduct(t, svc, "user_1")

	listed, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("cache failure must not fail the listing: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 product from store, got %d", len(listed))
	}
}

func TestProductService_WritesInvalidateCache(t *testing.T) {
	repo := newStubProductRepo()
	cache := &stubCache{}
	svc := NewProductService(repo, cache, nil, zerolog.Nop())

	owner := identityFor("user_1", domain.RoleUser)
	created := seedProduct(t, svc, "user_1")
	if _, err := svc.Update(context.Background(), owner, created.ID, ports.UpdateProductInput{Name: "v2", Price: 1}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := svc.Delete(context.Background(), owner, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if cache.invalidated != 3 {
		t.Fatalf("expected 3 invalidations (create, update, delete), got %d", cache.invalidated)
	}
}
