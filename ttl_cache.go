package cache

import (
	"fmt"
	"time"

	"github.com/samber/mo"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.uber.org/zap"

	api "github.com/krisalay/ttl-cache/api"
	"github.com/krisalay/ttl-cache/collection"
	"github.com/krisalay/ttl-cache/engine"
	"github.com/krisalay/ttl-cache/store"
	"github.com/krisalay/ttl-cache/types"
)

var _ api.Cache = (*TTLCache)(nil)

/*
TTLCache is the in-memory cache implementation.
This struct connects:
- the store, which holds the entries
- the engine, which decides expiry and records metrics and logs

Expiry is lazy: an expired entry stays in the store until Get or Has touches
that exact key, or until Prune is called. Nothing runs in the background.

TTLCache is not safe for concurrent use. Serialize access externally or wrap
it with NewLocked.
*/
type TTLCache struct {
	store  store.Store
	engine *engine.CacheEngine
}

type options struct {
	seed       any
	seeded     bool
	defaultTTL mo.Option[time.Duration]
	engine     *engine.CacheEngine
}

// Option configures New.
type Option func(*options)

// WithSeed pre-populates the cache, exactly as an initial SetMultiple would.
func WithSeed(entries any) Option {
	return func(o *options) {
		o.seed = entries
		o.seeded = true
	}
}

// WithDefaultTTL sets the TTL of the seed entries. Later writes are not affected.
func WithDefaultTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.defaultTTL = mo.Some(ttl)
	}
}

// WithEngine replaces the default engine (absolute expiry, no metrics, no logs).
func WithEngine(e *engine.CacheEngine) Option {
	return func(o *options) {
		o.engine = e
	}
}

// New creates a TTLCache. It fails only when the seed is not a valid
// collection of pairs or holds an invalid key.
func New(opts ...Option) (*TTLCache, error) {
	o := options{defaultTTL: mo.None[time.Duration]()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.engine == nil {
		o.engine = engine.Default()
	}

	c := &TTLCache{
		store:  store.NewMapStore(),
		engine: o.engine,
	}

	if o.seeded {
		if _, err := c.setMultiple(o.seed, o.defaultTTL); err != nil {
			return nil, fmt.Errorf("seed cache: %w", err)
		}
		c.engine.Logger.Debug("seeded cache", zap.Int("entries", c.store.Len()))
	}
	return c, nil
}

// lookup returns the live entry for key, or nil. An expired entry is removed
// as a side effect.
func (c *TTLCache) lookup(key any) (*types.CacheEntry, error) {
	k, err := types.ValidateKey(key)
	if err != nil {
		return nil, err
	}

	ent, ok := c.store.Get(k)
	if !ok {
		c.engine.Metrics.Miss()
		return nil, nil
	}

	if c.engine.IsExpired(ent) {
		c.store.Delete(k)
		c.engine.OnExpired(ent)
		return nil, nil
	}

	c.engine.OnRead(ent)
	return ent, nil
}

// Get retrieves a value from the cache, or def when there is none.
func (c *TTLCache) Get(key, def any) (any, error) {
	ent, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return def, nil
	}
	return ent.Value, nil
}

// Has reports whether a live entry exists for key.
func (c *TTLCache) Has(key any) (bool, error) {
	ent, err := c.lookup(key)
	if err != nil {
		return false, err
	}
	return ent != nil, nil
}

// Set stores a value without TTL.
func (c *TTLCache) Set(key, value any) (bool, error) {
	return c.set(key, value, mo.None[time.Duration]())
}

// SetWithTTL stores a value with an explicit TTL.
func (c *TTLCache) SetWithTTL(key, value any, ttl time.Duration) (bool, error) {
	return c.set(key, value, mo.Some(ttl))
}

func (c *TTLCache) set(key, value any, ttl mo.Option[time.Duration]) (bool, error) {
	k, err := types.ValidateKey(key)
	if err != nil {
		return false, err
	}

	c.store.Put(k, c.engine.NewEntry(k, value, ttl))
	return true, nil
}

// Delete removes key from the cache immediately.
func (c *TTLCache) Delete(key any) (bool, error) {
	k, err := types.ValidateKey(key)
	if err != nil {
		return false, err
	}

	c.store.Delete(k)
	c.engine.Metrics.Delete()
	return true, nil
}

// Clear discards every entry.
func (c *TTLCache) Clear() bool {
	n := c.store.Len()
	c.store.Clear()
	c.engine.Logger.Debug("cleared cache", zap.Int("entries", n))
	return true
}

// GetMultiple runs Get for every key in keys.
func (c *TTLCache) GetMultiple(keys any, def any) (*orderedmap.OrderedMap[any, any], error) {
	return getMultiple(keys, def, c.Get)
}

// SetMultiple runs Set for every pair in entries.
func (c *TTLCache) SetMultiple(entries any) (bool, error) {
	return c.setMultiple(entries, mo.None[time.Duration]())
}

// SetMultipleWithTTL runs SetWithTTL for every pair in entries.
func (c *TTLCache) SetMultipleWithTTL(entries any, ttl time.Duration) (bool, error) {
	return c.setMultiple(entries, mo.Some(ttl))
}

/*
setMultiple validates the collection up front, then writes pair by pair.
A pair with an invalid key stops the loop; pairs before it stay written.
*/
func (c *TTLCache) setMultiple(entries any, ttl mo.Option[time.Duration]) (bool, error) {
	seq, err := collection.Pairs(entries)
	if err != nil {
		return false, err
	}

	all := true
	for k, v := range seq {
		ok, err := c.set(k, v, ttl)
		if err != nil {
			return false, err
		}
		all = all && ok
	}
	return all, nil
}

// DeleteMultiple runs Delete for every key in keys.
func (c *TTLCache) DeleteMultiple(keys any) (bool, error) {
	seq, err := collection.Keys(keys)
	if err != nil {
		return false, err
	}

	all := true
	for k := range seq {
		ok, err := c.Delete(k)
		if err != nil {
			return false, err
		}
		all = all && ok
	}
	return all, nil
}

// Len returns how many entries the store physically holds, including
// expired ones nobody has touched yet.
func (c *TTLCache) Len() int {
	return c.store.Len()
}

// Prune removes every expired entry and returns how many it removed.
func (c *TTLCache) Prune() int {
	removed := 0
	c.store.Range(func(k any, ent *types.CacheEntry) bool {
		if c.engine.IsExpired(ent) {
			c.store.Delete(k)
			c.engine.Metrics.Expire()
			removed++
		}
		return true
	})

	if removed > 0 {
		c.engine.Logger.Debug("pruned expired entries", zap.Int("removed", removed))
	}
	return removed
}
