package cache

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Connect builds a redis-backed cache, or nil when the address is empty or the
// server is unreachable. Callers fall back to the in-process cache in that case.
func Connect(addr, password string, db int) *RedisCache {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unreachable, falling back to in-process cache: %v", err)
		return nil
	}
	return NewRedisCache(client)
}

func limitKey(accountID int64) string {
	return fmt.Sprintf("account:%d:credit_limit", accountID)
}

func (c *RedisCache) Get(ctx context.Context, accountID int64) (int64, bool) {
	limit, err := c.client.Get(ctx, limitKey(accountID)).Int64()
	if err != nil {
		if err != redis.Nil {
			log.Printf("redis limit lookup failed for account %d: %v", accountID, err)
		}
		return 0, false
	}
	return limit, true
}

func (c *RedisCache) Put(ctx context.Context, accountID, limit int64) {
	// Limits are immutable, so entries never expire.
	if err := c.client.Set(ctx, limitKey(accountID), limit, 0).Err(); err != nil {
		log.Printf("redis limit store failed for account %d: %v", accountID, err)
	}
}
