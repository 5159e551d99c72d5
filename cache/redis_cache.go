package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_interface"
)

// redisCache 基于Redis的响应缓存，实现 stream_interface.Cache
// 定时抓取完成后整库FLUSHALL失效，不做按键失效
type redisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) stream_interface.Cache {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (c *redisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *redisCache) FlushAll(ctx context.Context) error {
	return c.client.FlushAll(ctx).Err()
}
