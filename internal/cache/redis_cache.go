package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/merchline/merchline/internal/domain/model"
)

// RedisCatalogCache stores catalog listings as JSON blobs in Redis.
type RedisCatalogCache struct {
	client *redis.Client
}

// NewRedisCatalogCache connects a catalog cache to the given Redis address.
func NewRedisCatalogCache(addr string) *RedisCatalogCache {
	client := redis.NewClient(&redis.Options{Addr: addr})
	return &RedisCatalogCache{client: client}
}

func (c *RedisCatalogCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCatalogCache) Close() error {
	return c.client.Close()
}

func (c *RedisCatalogCache) GetListing(ctx context.Context, key string) ([]model.WholesalerProduct, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var products []model.WholesalerProduct
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		return nil, false, err
	}
	return products, true, nil
}

func (c *RedisCatalogCache) SetListing(ctx context.Context, key string, products []model.WholesalerProduct, ttl time.Duration) error {
	if products == nil {
		return nil
	}
	payload, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}

func (c *RedisCatalogCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
