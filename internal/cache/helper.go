package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// GetJSON fetches a key and unmarshals it into dest. Returns false on
// miss, disabled cache, or a corrupt entry (which is deleted).
func GetJSON(ctx context.Context, key string, dest any) bool {
	c := GetClient()
	if c == nil {
		return false
	}
	raw, err := c.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.Del(ctx, key)
		return false
	}
	return true
}

// SetJSON stores value under key with the given TTL, best effort.
func SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	c := GetClient()
	if c == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.Set(ctx, key, raw, ttl)
}

// CacheAside returns the cached value for key, or loads it, caches it
// and returns it. Loader errors are passed through uncached.
func CacheAside[T any](ctx context.Context, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	var cached T
	if GetJSON(ctx, key, &cached) {
		return cached, nil
	}
	fresh, err := load()
	if err != nil {
		return fresh, err
	}
	SetJSON(ctx, key, fresh, ttl)
	return fresh, nil
}

// Blacklisted reports whether a token ID has been revoked. Fails open
// when the cache is unavailable so logins keep working.
func Blacklisted(ctx context.Context, jti string) bool {
	c := GetClient()
	if c == nil {
		return false
	}
	n, err := c.Exists(ctx, TokenBlacklistKey(jti)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false
	}
	return n > 0
}

// Blacklist revokes a token ID until its natural expiry.
func Blacklist(ctx context.Context, jti string, ttl time.Duration) {
	c := GetClient()
	if c == nil || ttl <= 0 {
		return
	}
	c.Set(ctx, TokenBlacklistKey(jti), "1", ttl)
}
