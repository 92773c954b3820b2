package cache

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/krisalay/ttl-cache/collection"
	"github.com/krisalay/ttl-cache/types"
)

/*
getMultiple runs get for every key in keys.

Keys that address the same entry (1, int64(1), uint8(1)) collapse into one
element. It is listed under the first spelling seen and holds the last
lookup's value.
*/
func getMultiple(keys, def any, get func(key, def any) (any, error)) (*orderedmap.OrderedMap[any, any], error) {
	seq, err := collection.Keys(keys)
	if err != nil {
		return nil, err
	}

	out := orderedmap.New[any, any]()
	shown := make(map[any]any)
	for k := range seq {
		v, err := get(k, def)
		if err != nil {
			return nil, err
		}

		// get accepted k, so it normalizes
		norm, _ := types.ValidateKey(k)
		if first, ok := shown[norm]; ok {
			k = first
		} else {
			shown[norm] = k
		}
		out.Set(k, v)
	}
	return out, nil
}
