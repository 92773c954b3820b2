package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cache "github.com/krisalay/ttl-cache"
)

func TestRememberLoadsOnceThenHits(t *testing.T) {
	c, clk := newTestCache(t)
	l := cache.NewLoader(c)
	ctx := context.Background()

	calls := 0
	load := func(context.Context) (any, error) {
		calls++
		return "loaded", nil
	}

	v, err := l.Remember(ctx, "k", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, "loaded", v)

	v, err = l.Remember(ctx, "k", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, "loaded", v)
	assert.Equal(t, 1, calls)

	// after expiry it loads again
	clk.Advance(time.Minute)
	_, err = l.Remember(ctx, "k", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRememberForever(t *testing.T) {
	c, clk := newTestCache(t)
	l := cache.NewLoader(c)

	_, err := l.RememberForever(context.Background(), 7, func(context.Context) (any, error) {
		return nil, nil
	})
	require.NoError(t, err)

	// a stored nil is still a hit
	clk.Advance(24 * time.Hour)
	has, _ := c.Has(7)
	assert.True(t, has)
}

func TestRememberErrorStoresNothing(t *testing.T) {
	c, _ := newTestCache(t)
	l := cache.NewLoader(c)
	boom := errors.New("backend down")

	_, err := l.Remember(context.Background(), "k", time.Minute, func(context.Context) (any, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Len())
}

func TestRememberValidatesAndHonoursContext(t *testing.T) {
	c, _ := newTestCache(t)
	l := cache.NewLoader(c)
	never := func(context.Context) (any, error) {
		t.Fatal("load must not be called")
		return nil, nil
	}

	_, err := l.Remember(context.Background(), []int{1}, time.Minute, never)
	assert.ErrorIs(t, err, cache.ErrInvalidKey)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = l.Remember(ctx, "k", time.Minute, never)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRememberDeduplicatesConcurrentMisses(t *testing.T) {
	c := newLockedCache(t)
	l := cache.NewLoader(c)

	var calls atomic.Int32
	release := make(chan struct{})
	load := func(context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "value", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := l.Remember(context.Background(), "shared", time.Minute, load)
			assert.NoError(t, err)
			assert.Equal(t, "value", v)
		}()
	}

	// let the goroutines pile up on the flight before releasing it
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestRememberSharedLoadOutlivesFirstCaller(t *testing.T) {
	c := newLockedCache(t)
	l := cache.NewLoader(c)

	var once sync.Once
	started := make(chan struct{})
	release := make(chan struct{})
	load := func(ctx context.Context) (any, error) {
		once.Do(func() { close(started) })
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return "value", nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	results := make([]any, 2)
	errs := make([]error, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = l.Remember(ctx, "k", time.Minute, load)
	}()
	<-started

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], errs[1] = l.Remember(context.Background(), "k", time.Minute, load)
	}()

	// let the second caller join the flight, then drop the first
	time.Sleep(20 * time.Millisecond)
	cancel()
	close(release)
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, "value", results[i])
	}
	has, _ := c.Has("k")
	assert.True(t, has)
}

func TestRememberOverNullCacheAlwaysLoads(t *testing.T) {
	l := cache.NewLoader(cache.NewNullCache())
	calls := 0
	for i := 0; i < 3; i++ {
		v, err := l.RememberForever(context.Background(), "k", func(context.Context) (any, error) {
			calls++
			return calls, nil
		})
		require.NoError(t, err)
		assert.Equal(t, calls, v)
	}
	assert.Equal(t, 3, calls)
}
