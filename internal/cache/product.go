// Package cache provides the Redis read-through cache used by the
// product service.
//
// Cached values are JSON-encoded models with a short TTL. The cache is
// strictly an accelerator: every miss or Redis failure falls through
// to the repository, so correctness never depends on Redis being up.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chanakya-dev/campustore/internal/model"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ProductTTL bounds staleness after out-of-band writes. Updates and
// deletes invalidate explicitly, so the TTL is only a safety net.
const ProductTTL = 5 * time.Minute

// ProductCache is the narrow caching capability the product service
// depends on. Tests substitute an in-memory fake.
type ProductCache interface {
	// Get returns the cached product and true on a hit. Misses and
	// cache failures both report false; they are indistinguishable on
	// purpose.
	Get(ctx context.Context, id uuid.UUID) (*model.Product, bool)

	// Set stores the product with the standard TTL.
	Set(ctx context.Context, product *model.Product)

	// Invalidate drops the cached entry for id.
	Invalidate(ctx context.Context, id uuid.UUID)
}

// RedisProductCache implements ProductCache over go-redis.
type RedisProductCache struct {
	client *redis.Client
	logger *zerolog.Logger
}

// NewRedisProductCache constructs the Redis-backed product cache.
func NewRedisProductCache(client *redis.Client, logger *zerolog.Logger) *RedisProductCache {
	return &RedisProductCache{
		client: client,
		logger: logger,
	}
}

func productKey(id uuid.UUID) string {
	return fmt.Sprintf("product:%s", id)
}

// Get fetches and decodes the cached product. Redis errors are logged
// at debug level and reported as misses.
func (c *RedisProductCache) Get(ctx context.Context, id uuid.UUID) (*model.Product, bool) {
	data, err := c.client.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug().Err(err).Str("product_id", id.String()).Msg("product cache read failed")
		}
		return nil, false
	}

	var product model.Product
	if err := json.Unmarshal(data, &product); err != nil {
		// A corrupt entry is useless; drop it so the next read repopulates.
		c.logger.Debug().Err(err).Str("product_id", id.String()).Msg("dropping corrupt product cache entry")
		c.client.Del(ctx, productKey(id))
		return nil, false
	}

	return &product, true
}

// Set stores the product. Failures are logged and ignored; the source
// of truth is the database.
func (c *RedisProductCache) Set(ctx context.Context, product *model.Product) {
	data, err := json.Marshal(product)
	if err != nil {
		c.logger.Debug().Err(err).Str("product_id", product.ID.String()).Msg("failed to encode product for cache")
		return
	}

	if err := c.client.Set(ctx, productKey(product.ID), data, ProductTTL).Err(); err != nil {
		c.logger.Debug().Err(err).Str("product_id", product.ID.String()).Msg("product cache write failed")
	}
}

// Invalidate drops the cached entry after an update or delete.
func (c *RedisProductCache) Invalidate(ctx context.Context, id uuid.UUID) {
	if err := c.client.Del(ctx, productKey(id)).Err(); err != nil {
		c.logger.Debug().Err(err).Str("product_id", id.String()).Msg("product cache invalidation failed")
	}
}
