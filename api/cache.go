package cache

import (
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

/*
Cache defines the PUBLIC API shared by every cache implementation.

Keys are scalars: string, any integer kind, float32/float64 or bool. Every
single-key method validates its key first and fails with an error wrapping
types.ErrInvalidKey, before touching any state.

Bulk methods take a collection argument (see package collection for the
accepted shapes) and fail with an error wrapping types.ErrInvalidCollection
before iterating when it is not one.

Implementations are NOT required to be safe for concurrent use; wrap one in a
LockedCache to share it between goroutines.
*/
type Cache interface {

	/*
		Get returns the value stored for key, or def.

		BEHAVIOR:
		---------
		- Key absent: def
		- Key present but expired: def, and the stale entry is removed
		- Otherwise: the stored value
	*/
	Get(key, def any) (any, error)

	/*
		Set stores a value that never expires.
		It overwrites any existing entry for key unconditionally.

		The bool reports whether the value was stored.
	*/
	Set(key, value any) (bool, error)

	/*
		SetWithTTL stores a value that expires ttl from now.

		TTL (Time-To-Live):
		-------------------
		- After ttl elapses the entry is treated as absent
		- A zero or negative ttl stores an entry that is already expired
		- Expired entries are lazily removed on access
	*/
	SetWithTTL(key, value any, ttl time.Duration) (bool, error)

	/*
		Delete removes key.

		This operation is idempotent:
		- Removing a non-existing key is safe and still reports success
	*/
	Delete(key any) (bool, error)

	// Clear removes every entry.
	Clear() bool

	/*
		Has reports whether a live entry exists for key, with the same lazy
		expiry as Get.

		The answer is stale the moment it is returned if the cache is shared.
		Do not use Has as a guard for a later Get or Set.
	*/
	Has(key any) (bool, error)

	/*
		GetMultiple looks up every key in keys with Get.

		The result keeps the iteration order of keys. Duplicate keys,
		including the same integer held in different Go types, collapse
		into one element listed under its first spelling and holding the
		last lookup.
	*/
	GetMultiple(keys any, def any) (*orderedmap.OrderedMap[any, any], error)

	// SetMultiple stores every key-value pair in entries with Set.
	// The bool reports whether every pair was stored.
	SetMultiple(entries any) (bool, error)

	// SetMultipleWithTTL stores every pair in entries with the same ttl.
	SetMultipleWithTTL(entries any, ttl time.Duration) (bool, error)

	// DeleteMultiple removes every key in keys with Delete.
	DeleteMultiple(keys any) (bool, error)
}
