package cache

import (
	"context"
	"sync"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	api "github.com/krisalay/ttl-cache/api"
)

var _ api.Cache = (*LockedCache)(nil)

// Optional capabilities of the wrapped cache.
type (
	pruner interface {
		Prune() int
	}
	sizer interface {
		Len() int
	}
)

/*
LockedCache serializes every call to the wrapped cache with one mutex.

Bulk operations hold the lock for the whole call, so no other goroutine
observes a half-applied SetMultiple. Has is still only a snapshot.
*/
type LockedCache struct {
	mu    sync.Mutex
	inner api.Cache
}

// NewLocked wraps c. c must not be used directly afterwards.
func NewLocked(c api.Cache) *LockedCache {
	return &LockedCache{inner: c}
}

func (c *LockedCache) Get(key, def any) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Get(key, def)
}

func (c *LockedCache) Set(key, value any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Set(key, value)
}

func (c *LockedCache) SetWithTTL(key, value any, ttl time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.SetWithTTL(key, value, ttl)
}

func (c *LockedCache) Delete(key any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Delete(key)
}

func (c *LockedCache) Clear() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Clear()
}

func (c *LockedCache) Has(key any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Has(key)
}

func (c *LockedCache) GetMultiple(keys any, def any) (*orderedmap.OrderedMap[any, any], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.GetMultiple(keys, def)
}

func (c *LockedCache) SetMultiple(entries any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.SetMultiple(entries)
}

func (c *LockedCache) SetMultipleWithTTL(entries any, ttl time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.SetMultipleWithTTL(entries, ttl)
}

func (c *LockedCache) DeleteMultiple(keys any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.DeleteMultiple(keys)
}

// Prune sweeps the wrapped cache if it supports it, and returns 0 otherwise.
func (c *LockedCache) Prune() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.inner.(pruner); ok {
		return p.Prune()
	}
	return 0
}

// Len returns the wrapped cache's entry count if it reports one, and 0 otherwise.
func (c *LockedCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.inner.(sizer); ok {
		return s.Len()
	}
	return 0
}

/*
Janitor calls Prune every interval until ctx is done. It blocks, so run it in
its own goroutine:

	go locked.Janitor(ctx, time.Minute)

It is optional: reads stay correct without it, expired entries only linger
in memory for longer. A non-positive interval disables it: Janitor returns
at once.
*/
func (c *LockedCache) Janitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Prune()
		}
	}
}
