package cache_test

import orderedmap "github.com/wk8/go-ordered-map/v2"

func keysOf(m *orderedmap.OrderedMap[any, any]) []any {
	var keys []any
	for p := m.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}
