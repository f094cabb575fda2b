package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopsmith/ecommerce-api/internal/core/domain"
)

const (
	productListKey = "catalog:products:active"
	productListTTL = 30 * time.Second
)

// CatalogCache caches the public product listing as a JSON blob with a short
// TTL. Writers invalidate it; a miss or any Redis failure simply sends the
// reader back to MongoDB.
type CatalogCache struct {
	client *redis.Client
}

// NewCatalogCache wraps the given Redis client.
func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{client: client}
}

// GetProducts returns the cached listing, or (nil, nil) on a miss.
func (c *CatalogCache) GetProducts(ctx context.Context) ([]*domain.Product, error) {
	raw, err := c.client.Get(ctx, productListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var products []*domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		// A corrupt entry is dropped rather than served.
		_ = c.client.Del(ctx, productListKey).Err()
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return products, nil
}

// SetProducts stores the listing for productListTTL.
func (c *CatalogCache) SetProducts(ctx context.Context, products []*domain.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, productListKey, raw, productListTTL).Err()
}

// Invalidate drops the cached listing after any catalog mutation.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, productListKey).Err()
}
