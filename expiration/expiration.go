// This file defines how cache entries expire over time.

package expiration

import (
	"time"

	"github.com/samber/mo"

	"github.com/krisalay/ttl-cache/types"
)

/*
Strategy is the interface that all expiration rules must follow. Instead of hard-coding
expiration logic into the cache, we define a strategy so expiration behavior can be swapped easily.
*/
type Strategy interface {

	// IsExpired checks if the entry is expired at now.
	IsExpired(*types.CacheEntry, time.Time) bool

	// OnAccess is called whenever a live cache entry is read.
	OnAccess(*types.CacheEntry, time.Time)

	// OnWrite is called whenever a cache entry is written or replaced.
	// It is responsible for turning the entry's TTL into ExpiresAt.
	OnWrite(*types.CacheEntry, time.Time)
}

/*
Absolute is the default strategy: an entry written with a TTL expires at
write time + TTL, and reads never move that instant.

A zero or negative TTL produces an entry that is already expired.
*/
type Absolute struct{}

func (Absolute) IsExpired(ent *types.CacheEntry, now time.Time) bool {
	return ent.IsExpired(now)
}

func (Absolute) OnAccess(*types.CacheEntry, time.Time) {}

func (Absolute) OnWrite(ent *types.CacheEntry, now time.Time) {
	ent.CreatedAt = now
	ent.ExpiresAt = deadline(ent.TTL, now)
}

func deadline(ttl mo.Option[time.Duration], now time.Time) mo.Option[time.Time] {
	d, ok := ttl.Get()
	if !ok {
		return mo.None[time.Time]()
	}
	return mo.Some(now.Add(d))
}
