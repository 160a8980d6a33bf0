// Package cache holds the read-through cache of immutable account metadata.
// Only the credit limit is cached: it never changes after provisioning, so
// entries need no TTL and no invalidation. Balances must never pass through
// here.
package cache

import (
	"context"
	"sync"
)

type LimitCache interface {
	Get(ctx context.Context, accountID int64) (int64, bool)
	Put(ctx context.Context, accountID, limit int64)
}

type MemoryCache struct {
	mu     sync.RWMutex
	limits map[int64]int64
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{limits: make(map[int64]int64)}
}

func (c *MemoryCache) Get(_ context.Context, accountID int64) (int64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	limit, ok := c.limits[accountID]
	return limit, ok
}

func (c *MemoryCache) Put(_ context.Context, accountID, limit int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.limits[accountID] = limit
}
