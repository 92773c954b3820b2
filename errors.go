package cache

import "github.com/krisalay/ttl-cache/types"

// Re-exported so callers can errors.Is against the root package.
var (
	ErrInvalidKey        = types.ErrInvalidKey
	ErrInvalidCollection = types.ErrInvalidCollection
)

// Pair is one key-value element accepted by SetMultiple.
type Pair = types.Pair
