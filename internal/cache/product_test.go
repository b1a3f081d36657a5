package cache

import (
	"context"
	"testing"
	"time"

	"github.com/chanakya-dev/campustore/internal/model"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// unreachableCache returns a cache whose Redis client points at a
// closed port, so every command fails fast.
func unreachableCache(t *testing.T) *RedisProductCache {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	logger := zerolog.Nop()
	return NewRedisProductCache(client, &logger)
}

func TestProductKey(t *testing.T) {
	id := uuid.MustParse("a2f4c8aa-3b6e-4a3f-8f9a-1c2d3e4f5a6b")
	assert.Equal(t, "product:a2f4c8aa-3b6e-4a3f-8f9a-1c2d3e4f5a6b", productKey(id))
}

func TestGetTreatsRedisFailureAsMiss(t *testing.T) {
	c := unreachableCache(t)

	product, ok := c.Get(context.Background(), uuid.New())

	assert.False(t, ok)
	assert.Nil(t, product)
}

func TestSetSwallowsRedisFailure(t *testing.T) {
	c := unreachableCache(t)

	// Must not panic or error; the database stays the source of truth.
	c.Set(context.Background(), &model.Product{ID: uuid.New(), Name: "X"})
}

func TestInvalidateSwallowsRedisFailure(t *testing.T) {
	c := unreachableCache(t)

	c.Invalidate(context.Background(), uuid.New())
}
