package types

import "context"

// LoadFunc produces the value for a key the cache does not hold. It is
// typically a database or an API call.
type LoadFunc func(ctx context.Context) (any, error)
