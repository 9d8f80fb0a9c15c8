package resetcache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache marks password-reset tokens as consumed so a leaked reset link
// cannot be replayed within its validity window.
type Cache struct {
	rdb *redis.Client
}

func New(redisURL string) *Cache {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("resetcache: invalid redis url, single-use guard disabled: %v", err)
		return &Cache{}
	}
	return &Cache{rdb: redis.NewClient(opts)}
}

// Consume returns true the first time a jti is seen and false on replay.
// If redis is unreachable the guard fails open: resets keep working, the
// replay protection is best-effort.
func (c *Cache) Consume(ctx context.Context, jti string, ttl time.Duration) bool {
	if c.rdb == nil {
		return true
	}

	ok, err := c.rdb.SetNX(ctx, "reset:used:"+jti, 1, ttl).Result()
	if err != nil {
		log.Printf("resetcache: %v", err)
		return true
	}
	return ok
}
