package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	productListCachePrefix = "products:v:"
	cacheVersionKey        = "products:version"
	defaultCacheTTL        = 5 * time.Minute
)

// ProductCache is a read-through cache for product listings. Keys embed a
// version counter; product writes bump the counter so stale pages fall out
// without enumerating keys.
type ProductCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{redis: client, ttl: defaultCacheTTL}
}

// GetList returns a cached listing response, if present.
func (c *ProductCache) GetList(ctx context.Context, key string) (*ProductListResponse, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}

	version, err := c.version(ctx)
	if err != nil || version == 0 {
		return nil, false
	}

	data, err := c.redis.Get(ctx, c.listKey(version, key)).Result()
	if err != nil {
		return nil, false
	}

	var resp ProductListResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		zap.L().Warn("Failed to unmarshal cached product list", zap.Error(err))
		return nil, false
	}
	return &resp, true
}

// SetListAsync caches a listing response without blocking the request.
func (c *ProductCache) SetListAsync(key string, resp *ProductListResponse) {
	if c == nil || c.redis == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := c.version(ctx)
		if err != nil {
			return
		}
		if version == 0 {
			version = 1
			if err := c.redis.Set(ctx, cacheVersionKey, version, 0).Err(); err != nil {
				return
			}
		}

		data, err := json.Marshal(resp)
		if err != nil {
			return
		}
		if err := c.redis.Set(ctx, c.listKey(version, key), data, c.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache product list", zap.Error(err))
		}
	}()
}

// Invalidate bumps the version counter after any product write.
func (c *ProductCache) Invalidate(ctx context.Context) {
	if c == nil || c.redis == nil {
		return
	}
	if err := c.redis.Incr(ctx, cacheVersionKey).Err(); err != nil {
		zap.L().Warn("Failed to bump product cache version", zap.Error(err))
	}
}

func (c *ProductCache) version(ctx context.Context) (int64, error) {
	v, err := c.redis.Get(ctx, cacheVersionKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return v, err
}

func (c *ProductCache) listKey(version int64, key string) string {
	return fmt.Sprintf("%s%d:%s", productListCachePrefix, version, key)
}
