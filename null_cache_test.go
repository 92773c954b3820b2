package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cache "github.com/krisalay/ttl-cache"
)

func TestNullCacheNeverStores(t *testing.T) {
	c := cache.NewNullCache()

	ok, err := c.Set("key", "value")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.SetWithTTL("key", "value", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	v, err := c.Get("key", "default")
	require.NoError(t, err)
	assert.Equal(t, "default", v)

	has, err := c.Has("key")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestNullCacheDeleteAndClearSucceed(t *testing.T) {
	c := cache.NewNullCache()

	ok, err := c.Delete("key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, c.Clear())
}

func TestNullCacheBulk(t *testing.T) {
	c := cache.NewNullCache()

	got, err := c.GetMultiple([]string{"a", "b"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, keysOf(got))
	a, _ := got.Get("a")
	assert.Equal(t, 0, a)

	// bulk writes and deletes report false overall
	ok, err := c.SetMultiple(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.SetMultipleWithTTL(map[string]int{"a": 1}, time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.DeleteMultiple([]string{"a"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNullCacheValidatesLikeTTLCache(t *testing.T) {
	c := cache.NewNullCache()

	_, err := c.Get([]int{1}, nil)
	assert.ErrorIs(t, err, cache.ErrInvalidKey)
	_, err = c.Set(nil, 1)
	assert.ErrorIs(t, err, cache.ErrInvalidKey)
	_, err = c.SetWithTTL(nil, 1, time.Second)
	assert.ErrorIs(t, err, cache.ErrInvalidKey)
	_, err = c.Delete(struct{}{})
	assert.ErrorIs(t, err, cache.ErrInvalidKey)
	_, err = c.Has(map[string]int{})
	assert.ErrorIs(t, err, cache.ErrInvalidKey)

	_, err = c.GetMultiple("a", nil)
	assert.ErrorIs(t, err, cache.ErrInvalidCollection)
	_, err = c.SetMultiple([]string{"a"})
	assert.ErrorIs(t, err, cache.ErrInvalidCollection)
	_, err = c.DeleteMultiple(nil)
	assert.ErrorIs(t, err, cache.ErrInvalidCollection)

	_, err = c.SetMultiple([]cache.Pair{{Key: []int{1}, Value: 1}})
	assert.ErrorIs(t, err, cache.ErrInvalidKey)
}
