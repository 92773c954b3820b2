package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/mo"
	"golang.org/x/sync/singleflight"

	api "github.com/krisalay/ttl-cache/api"
	"github.com/krisalay/ttl-cache/types"
)

// missing is the default passed to Get so a stored nil is not mistaken for a miss.
var missing = &struct{ _ byte }{}

/*
Loader implements read-through access on top of any Cache.

The cache it wraps must be safe for concurrent use (a LockedCache) if
Remember is called from more than one goroutine.

Concurrent misses on one key share a single load call. That call gets the
first caller's context values but not its cancellation, so one caller giving
up never fails the others. Callers that need a deadline on the load itself
should enforce it inside load.
*/
type Loader struct {
	cache api.Cache

	// sf makes sure that concurrent misses on the same key call load once.
	sf singleflight.Group
}

// NewLoader creates a Loader over c.
func NewLoader(c api.Cache) *Loader {
	return &Loader{cache: c}
}

// Remember returns the cached value for key, or loads it, stores it for ttl and returns it.
func (l *Loader) Remember(ctx context.Context, key any, ttl time.Duration, load types.LoadFunc) (any, error) {
	return l.remember(ctx, key, mo.Some(ttl), load)
}

// RememberForever is Remember with a value that never expires.
func (l *Loader) RememberForever(ctx context.Context, key any, load types.LoadFunc) (any, error) {
	return l.remember(ctx, key, mo.None[time.Duration](), load)
}

func (l *Loader) remember(ctx context.Context, key any, ttl mo.Option[time.Duration], load types.LoadFunc) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, err := l.cache.Get(key, missing)
	if err != nil {
		return nil, err
	}
	if v != missing {
		return v, nil
	}

	// Get already validated the key, so this cannot fail.
	k, _ := types.ValidateKey(key)

	/*
		singleflight ensures that:
		- If 100 goroutines miss the same key,
		  only ONE of them calls load.
		- Others wait for the result.
	*/
	shared := context.WithoutCancel(ctx)
	v, err, _ = l.sf.Do(fmt.Sprintf("%T:%v", k, k), func() (any, error) {
		// a flight that just finished may have stored it
		if v, err := l.cache.Get(key, missing); err == nil && v != missing {
			return v, nil
		}

		val, err := load(shared)
		if err != nil {
			return nil, err
		}

		if d, ok := ttl.Get(); ok {
			_, err = l.cache.SetWithTTL(key, val, d)
		} else {
			_, err = l.cache.Set(key, val)
		}
		if err != nil {
			return nil, err
		}
		return val, nil
	})
	return v, err
}
