package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/frasehub/frasehub/internal/config"
	"github.com/redis/go-redis/v9"
)

// likeCountTTL bounds staleness of cached like counts; the DB column is
// the fallback source of truth on a miss.
const likeCountTTL = time.Hour

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

// --- like-count cache ---

// KeyForLikeCount generates the Redis key for a quote's like count.
func (c *RedisCache) KeyForLikeCount(quoteID string) string {
	return fmt.Sprintf("likes:count:%s", quoteID)
}

// GetLikeCount returns the cached like count for a quote. A cache miss
// is reported via ok=false, never as an error.
func (c *RedisCache) GetLikeCount(ctx context.Context, quoteID string) (int64, bool, error) {
	val, err := c.Client.Get(ctx, c.KeyForLikeCount(quoteID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, nil // treat garbage as a miss
	}
	// refresh TTL on access
	_ = c.Client.Expire(ctx, c.KeyForLikeCount(quoteID), likeCountTTL).Err()
	return n, true, nil
}

// SetLikeCount stores a like count with a fresh TTL.
func (c *RedisCache) SetLikeCount(ctx context.Context, quoteID string, count int64) error {
	return c.Client.Set(ctx, c.KeyForLikeCount(quoteID), count, likeCountTTL).Err()
}

// BumpLikeCount adjusts a cached like count after a toggle (+1 or -1)
// and refreshes the TTL. A missing key is left absent so the next read
// falls back to the DB instead of trusting a lone delta.
func (c *RedisCache) BumpLikeCount(ctx context.Context, quoteID string, delta int64) error {
	key := c.KeyForLikeCount(quoteID)
	exists, err := c.Client.Exists(ctx, key).Result()
	if err != nil || exists == 0 {
		return err
	}
	if err := c.Client.IncrBy(ctx, key, delta).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, likeCountTTL).Err()
}

func (c *RedisCache) InvalidateLikeCount(ctx context.Context, quoteID string) error {
	return c.Client.Del(ctx, c.KeyForLikeCount(quoteID)).Err()
}

// --- anonymous like sets ---
//
// Anonymous viewers have no server-side identity; their liked-quote set
// is keyed by an opaque device token the client persists locally. The
// set can't be merged across devices or audited, matching the original
// device-local semantics.

// KeyForAnonLikes generates the Redis key for a device's liked-quote set.
func (c *RedisCache) KeyForAnonLikes(deviceID string) string {
	return fmt.Sprintf("anon:likes:%s", deviceID)
}

func (c *RedisCache) AnonLikeAdd(ctx context.Context, deviceID, quoteID string) error {
	return c.Client.SAdd(ctx, c.KeyForAnonLikes(deviceID), quoteID).Err()
}

func (c *RedisCache) AnonLikeRemove(ctx context.Context, deviceID, quoteID string) error {
	return c.Client.SRem(ctx, c.KeyForAnonLikes(deviceID), quoteID).Err()
}

func (c *RedisCache) AnonLikeContains(ctx context.Context, deviceID, quoteID string) (bool, error) {
	return c.Client.SIsMember(ctx, c.KeyForAnonLikes(deviceID), quoteID).Result()
}
