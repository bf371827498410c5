package repository

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// KeyValue is the part of the Redis client the plain key/value repositories use.
type KeyValue interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Transactional adds optimistic WATCH/MULTI transactions.
type Transactional interface {
	KeyValue
	Watch(ctx context.Context, fn func(*redis.Tx) error, keys ...string) error
}
