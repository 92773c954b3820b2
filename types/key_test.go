package types_test

import (
	"math"
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisalay/ttl-cache/types"
)

func TestValidateKeyScalars(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want any
	}{
		{"string", "item", "item"},
		{"empty string", "", ""},
		{"bool", true, true},
		{"int", 7, int64(7)},
		{"int8", int8(-3), int64(-3)},
		{"int32", int32(42), int64(42)},
		{"int64", int64(9), int64(9)},
		{"uint16", uint16(5), int64(5)},
		{"uint64 small", uint64(11), int64(11)},
		{"uint64 large", uint64(math.MaxUint64), uint64(math.MaxUint64)},
		{"float32", float32(1.5), float64(1.5)},
		{"float64", 2.25, 2.25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := types.ValidateKey(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidateKeyRejectsComposites(t *testing.T) {
	bad := map[string]any{
		"nil":     nil,
		"slice":   []string{"a"},
		"map":     map[string]int{"a": 1},
		"struct":  struct{ A int }{1},
		"pointer": new(int),
		"pair":    types.Pair{Key: "a", Value: 1},
		"nan":     math.NaN(),
	}

	for name, key := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := types.ValidateKey(key)
			assert.ErrorIs(t, err, types.ErrInvalidKey)
		})
	}
}

func TestCacheEntryIsExpired(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	permanent := &types.CacheEntry{ExpiresAt: mo.None[time.Time]()}
	assert.False(t, permanent.IsExpired(now))

	future := &types.CacheEntry{ExpiresAt: mo.Some(now.Add(time.Second))}
	assert.False(t, future.IsExpired(now))

	// expiry instant equal to now counts as expired
	exact := &types.CacheEntry{ExpiresAt: mo.Some(now)}
	assert.True(t, exact.IsExpired(now))

	past := &types.CacheEntry{ExpiresAt: mo.Some(now.Add(-time.Second))}
	assert.True(t, past.IsExpired(now))
}
