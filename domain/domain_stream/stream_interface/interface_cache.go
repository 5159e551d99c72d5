package stream_interface

import (
	"context"
	"time"
)

// Cache 带过期的键值缓存，抓取运行结束后允许整体清空，不做部分失效
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	FlushAll(ctx context.Context) error
}
