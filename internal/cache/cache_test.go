package cache

import (
	"context"
	"sync"
	"testing"
)

func TestMemoryCacheMissThenHit(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	if _, ok := c.Get(ctx, 1); ok {
		t.Fatalf("expected miss on empty cache")
	}
	c.Put(ctx, 1, 100000)
	limit, ok := c.Get(ctx, 1)
	if !ok || limit != 100000 {
		t.Fatalf("expected hit with 100000, got %d/%v", limit, ok)
	}
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			c.Put(ctx, id, id*10)
			c.Get(ctx, id)
		}(int64(i % 5))
	}
	wg.Wait()
	for id := int64(0); id < 5; id++ {
		if limit, ok := c.Get(ctx, id); !ok || limit != id*10 {
			t.Fatalf("account %d: got %d/%v", id, limit, ok)
		}
	}
}
