package expiration

import (
	"time"

	"github.com/krisalay/ttl-cache/types"
)

/*
ExpireAfterAccess implements "sliding TTL": every successful read pushes the
expiry forward by the entry's own TTL. As long as the data keeps getting used,
it stays alive. If nobody touches it for a while, it expires.

Permanent entries stay permanent, and an entry written with a TTL <= 0 is
expired on arrival and never read, so it is never extended.
*/
type ExpireAfterAccess struct{}

func (ExpireAfterAccess) IsExpired(ent *types.CacheEntry, now time.Time) bool {
	return ent.IsExpired(now)
}

// OnAccess moves ExpiresAt to now + TTL.
func (ExpireAfterAccess) OnAccess(ent *types.CacheEntry, now time.Time) {
	if _, ok := ent.TTL.Get(); ok {
		ent.ExpiresAt = deadline(ent.TTL, now)
	}
}

func (ExpireAfterAccess) OnWrite(ent *types.CacheEntry, now time.Time) {
	ent.CreatedAt = now
	ent.ExpiresAt = deadline(ent.TTL, now)
}
