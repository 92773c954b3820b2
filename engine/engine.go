package engine

import (
	"time"

	"github.com/samber/mo"
	"go.uber.org/zap"

	"github.com/krisalay/ttl-cache/expiration"
	"github.com/krisalay/ttl-cache/types"
)

/*
CacheEngine is the "brain" of the cache system.
It is responsible for the "behavior" of the cache, NOT storage.
This acts as the policy layer.

It decides:
- What time it is
- When data is expired
- How TTL is turned into an expiry instant on writes
- How reads affect expiry
- How metrics and logs are recorded

It does NOT:
- Store data
- Handle locking
- Validate keys
*/
type CacheEngine struct {

	// Expiration controls when a cache entry should be considered "too old".
	Expiration expiration.Strategy

	// Metrics is how we keep track of what the cache is doing.
	Metrics types.Metrics

	// Logger receives debug events (lazy expiry, clear, prune, seeding).
	Logger *zap.Logger

	now func() time.Time
}

// Option customizes a CacheEngine.
type Option func(*CacheEngine)

// WithClock replaces time.Now. Tests use it to move time without sleeping.
func WithClock(now func() time.Time) Option {
	return func(e *CacheEngine) {
		if now != nil {
			e.now = now
		}
	}
}

/*
NewCacheEngine creates a CacheEngine. Any nil argument is replaced by its
default: absolute expiration, no-op metrics, no-op logger.
*/
func NewCacheEngine(
	exp expiration.Strategy,
	metrics types.Metrics,
	logger *zap.Logger,
	opts ...Option,
) *CacheEngine {

	if exp == nil {
		exp = expiration.Absolute{}
	}
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &CacheEngine{
		Expiration: exp,
		Metrics:    metrics,
		Logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Default returns an engine with every policy at its default.
func Default() *CacheEngine {
	return NewCacheEngine(nil, nil, nil)
}

// Now is the engine's notion of the current instant.
func (e *CacheEngine) Now() time.Time {
	return e.now()
}

// IsExpired checks whether a cache entry is expired right now.
func (e *CacheEngine) IsExpired(ent *types.CacheEntry) bool {
	return e.Expiration.IsExpired(ent, e.now())
}

/*
NewEntry builds the entry for a write. ttl None means the entry never
expires; any present ttl, zero and negative included, gives ExpiresAt = now + ttl.
*/
func (e *CacheEngine) NewEntry(key, value any, ttl mo.Option[time.Duration]) *types.CacheEntry {
	ent := &types.CacheEntry{
		Key:   key,
		Value: value,
		TTL:   ttl,
	}
	e.Expiration.OnWrite(ent, e.now())
	e.Metrics.Write()
	return ent
}

// OnRead is called every time the cache returns a live value.
func (e *CacheEngine) OnRead(ent *types.CacheEntry) {
	e.Metrics.Hit()
	e.Expiration.OnAccess(ent, e.now())
}

// OnExpired is called when an expired entry is discovered and removed.
func (e *CacheEngine) OnExpired(ent *types.CacheEntry) {
	e.Metrics.Expire()
	e.Metrics.Miss()
	e.Logger.Debug("evicted expired entry",
		zap.Any("key", ent.Key),
		zap.Time("expires_at", ent.ExpiresAt.OrEmpty()),
	)
}
