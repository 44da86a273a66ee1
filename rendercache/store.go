// Package rendercache caches sanitized render output in Redis, keyed by a
// hash of the source markdown. Rendering is deterministic for a fixed
// extension set, so the cache needs no invalidation beyond its TTL.
package rendercache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Codycody31/changerawr-sub002/util"
)

// RenderPrefix namespaces cache keys in Redis.
const RenderPrefix = "render:"

// ErrNotFound is returned when no cached output exists for the key.
var ErrNotFound = errors.New("render cache entry not found")

// Store is the render-output cache used by the HTTP service.
type Store interface {
	GetHTML(ctx context.Context, key string) (string, error)
	SaveHTML(ctx context.Context, key string, html string, ttl time.Duration) error
	DeleteHTML(ctx context.Context, key string) error
}

// Key derives the cache key for a markdown document.
func Key(markdown string) string {
	sum := sha256.Sum256([]byte(markdown))
	return hex.EncodeToString(sum[:])
}

// RedisStore implements Store on a Redis client.
type RedisStore struct {
	client *redis.Client
}

// NewStore connects a RedisStore using the configured address.
func NewStore(config *util.Config) Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress, //  default "localhost:6379"
		Password: "",                  // "" for no password, ok for now
		DB:       0,                   // 0 for default database
	})

	return &RedisStore{client: rdb}
}

// GetHTML returns the cached sanitized HTML for key, or ErrNotFound when
// the entry is missing or expired.
func (store *RedisStore) GetHTML(ctx context.Context, key string) (string, error) {
	html, err := store.client.Get(ctx, RenderPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get cached render: %w", err)
	}
	return html, nil
}

// SaveHTML stores sanitized HTML under key for ttl.
func (store *RedisStore) SaveHTML(ctx context.Context, key string, html string, ttl time.Duration) error {
	if err := store.client.Set(ctx, RenderPrefix+key, html, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache render: %w", err)
	}
	return nil
}

// DeleteHTML evicts the cached output for key. Deleting a missing key is a
// no-op.
func (store *RedisStore) DeleteHTML(ctx context.Context, key string) error {
	if err := store.client.Del(ctx, RenderPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to evict cached render: %w", err)
	}
	return nil
}
