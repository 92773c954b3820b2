package cache

import (
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	api "github.com/krisalay/ttl-cache/api"
	"github.com/krisalay/ttl-cache/collection"
	"github.com/krisalay/ttl-cache/types"
)

var _ api.Cache = NullCache{}

/*
NullCache is a cache that stores nothing.

It is a drop-in for code that must accept a cache dependency but wants
caching off. Keys and collections are validated exactly like TTLCache, so
switching implementations never changes which calls fail.

  - Get returns the default
  - Set, SetWithTTL and Has report false
  - Delete and Clear report true
  - SetMultiple and DeleteMultiple report false
*/
type NullCache struct{}

// NewNullCache returns a NullCache.
func NewNullCache() NullCache {
	return NullCache{}
}

func (NullCache) Get(key, def any) (any, error) {
	if _, err := types.ValidateKey(key); err != nil {
		return nil, err
	}
	return def, nil
}

func (NullCache) Set(key, _ any) (bool, error) {
	_, err := types.ValidateKey(key)
	return false, err
}

func (NullCache) SetWithTTL(key, _ any, _ time.Duration) (bool, error) {
	_, err := types.ValidateKey(key)
	return false, err
}

func (NullCache) Delete(key any) (bool, error) {
	if _, err := types.ValidateKey(key); err != nil {
		return false, err
	}
	return true, nil
}

func (NullCache) Clear() bool { return true }

func (NullCache) Has(key any) (bool, error) {
	_, err := types.ValidateKey(key)
	return false, err
}

func (n NullCache) GetMultiple(keys any, def any) (*orderedmap.OrderedMap[any, any], error) {
	return getMultiple(keys, def, n.Get)
}

func (n NullCache) SetMultiple(entries any) (bool, error) {
	return n.SetMultipleWithTTL(entries, 0)
}

// SetMultipleWithTTL reports false even though nothing can go wrong per pair.
func (n NullCache) SetMultipleWithTTL(entries any, ttl time.Duration) (bool, error) {
	seq, err := collection.Pairs(entries)
	if err != nil {
		return false, err
	}
	for k, v := range seq {
		if _, err := n.SetWithTTL(k, v, ttl); err != nil {
			return false, err
		}
	}
	return false, nil
}

// DeleteMultiple reports false, unlike Delete.
func (n NullCache) DeleteMultiple(keys any) (bool, error) {
	seq, err := collection.Keys(keys)
	if err != nil {
		return false, err
	}
	for k := range seq {
		if _, err := n.Delete(k); err != nil {
			return false, err
		}
	}
	return false, nil
}
