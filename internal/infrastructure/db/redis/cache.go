package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/katyregal/salon-api/internal/api/metrics"
)

const (
	categoriesKey = "catalog:categories"
	categoriesTTL = 5 * time.Minute
)

// CategoryCache is a read-through cache for the catalog's distinct category
// list, invalidated on every catalog mutation.
type CategoryCache struct {
	client *redis.Client
}

// NewCategoryCache creates a CategoryCache wrapping the given Redis client.
func NewCategoryCache(client *redis.Client) *CategoryCache {
	return &CategoryCache{client: client}
}

// Get returns the cached category list, with ok=false on a miss.
func (c *CategoryCache) Get(ctx context.Context) ([]string, bool, error) {
	raw, err := c.client.Get(ctx, categoriesKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CategoryCacheTotal.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("category cache get: %w", err)
	}

	var categories []string
	if err := json.Unmarshal([]byte(raw), &categories); err != nil {
		// Treat a corrupt entry as a miss; the writer will overwrite it.
		metrics.CategoryCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, nil
	}

	metrics.CategoryCacheTotal.WithLabelValues("hit").Inc()
	return categories, true, nil
}

// Set stores the category list (expires after categoriesTTL).
func (c *CategoryCache) Set(ctx context.Context, categories []string) error {
	raw, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("category cache encode: %w", err)
	}
	return c.client.Set(ctx, categoriesKey, raw, categoriesTTL).Err()
}

// Invalidate drops the cached list.
func (c *CategoryCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, categoriesKey).Err()
}
