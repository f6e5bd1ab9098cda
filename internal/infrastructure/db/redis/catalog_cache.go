package redis

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopgraph/catalog-api/internal/api/metrics"
	"github.com/shopgraph/catalog-api/internal/core/domain"
)

const (
	generationKey = "catalog:gen"
	defaultTTL    = 30 * time.Second
)

// CatalogCache caches product listings per retrieval plan.
// Key format: catalog:list:<generation>:<plan fingerprint>. Mutations bump
// the generation counter, so every key written before a mutation can no
// longer be read; stale entries age out via TTL.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache creates a CatalogCache wrapping the given Redis client.
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &CatalogCache{client: client, ttl: ttl}
}

// GetList returns the cached products for the plan, or nil when the plan is
// not cached.
func (c *CatalogCache) GetList(ctx context.Context, plan domain.Plan) ([]domain.Product, error) {
	key, err := c.listKey(ctx, plan)
	if err != nil {
		return nil, err
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}

	metrics.CacheTotal.WithLabelValues("hit").Inc()
	return products, nil
}

// SetList caches the products for the plan until the TTL elapses or the
// next mutation.
func (c *CatalogCache) SetList(ctx context.Context, plan domain.Plan, products []domain.Product) error {
	key, err := c.listKey(ctx, plan)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

// Invalidate bumps the generation counter, orphaning all cached listings.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, generationKey).Err()
}

func (c *CatalogCache) listKey(ctx context.Context, plan domain.Plan) (string, error) {
	gen, err := c.client.Get(ctx, generationKey).Result()
	if errors.Is(err, redis.Nil) {
		gen = "0"
	} else if err != nil {
		return "", fmt.Errorf("cache generation: %w", err)
	}

	raw, err := json.Marshal(plan)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("catalog:list:%s:%x", gen, sha1.Sum(raw)), nil
}
