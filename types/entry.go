package types

import (
	"time"

	"github.com/samber/mo"
)

// CacheEntry is one stored value. It is replaced wholesale on re-Set of the
// same key, never merged.
type CacheEntry struct {
	Key       any
	Value     any
	CreatedAt time.Time

	// TTL is the duration the entry was written with. None => permanent.
	TTL mo.Option[time.Duration]

	// ExpiresAt is the absolute expiry instant. None => never expires.
	ExpiresAt mo.Option[time.Time]
}

// IsExpired reports whether the entry is expired at now. An entry whose
// expiry instant equals now is already expired.
func (e *CacheEntry) IsExpired(now time.Time) bool {
	at, ok := e.ExpiresAt.Get()
	return ok && !now.Before(at)
}

// Pair is one key-value element of a bulk write.
type Pair struct {
	Key   any
	Value any
}
