package main

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	cache "github.com/krisalay/ttl-cache"
	"github.com/krisalay/ttl-cache/engine"
)

// ================= BENCHMARK =================

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// ---------------- Cache Config ----------------
	const (
		preloadKeys = 100000
		goroutines  = 200
		opsPerG     = 5000
		ttl         = 60 * time.Second
	)

	logger.Info("benchmark config",
		zap.Int("preload_keys", preloadKeys),
		zap.Int("goroutines", goroutines),
		zap.Int("ops_per_goroutine", opsPerG),
		zap.Duration("ttl", ttl),
	)

	// ---------------- Preload Cache ----------------
	seed := make([]cache.Pair, preloadKeys)
	for i := range seed {
		seed[i] = cache.Pair{Key: fmt.Sprintf("key-%d", i), Value: i}
	}

	inner, err := cache.New(
		cache.WithEngine(engine.NewCacheEngine(nil, nil, logger.Named("cache"))),
		cache.WithSeed(seed),
		cache.WithDefaultTTL(ttl),
	)
	if err != nil {
		logger.Fatal("create cache", zap.Error(err))
	}
	c := cache.NewLocked(inner)
	logger.Info("preload complete", zap.Int("entries", c.Len()))

	// ---------------- Load Test ----------------
	logger.Info("running concurrency benchmark")

	start := time.Now()

	wg := sync.WaitGroup{}
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < opsPerG; j++ {
				key := fmt.Sprintf("key-%d", j%preloadKeys)
				if j%10 == 0 {
					_, _ = c.SetWithTTL(key, id, ttl)
					continue
				}
				_, _ = c.Get(key, nil)
			}
		}(i)
	}

	wg.Wait()

	duration := time.Since(start)
	totalOps := goroutines * opsPerG

	fmt.Println("\n================ RESULTS =================")
	fmt.Printf("Total Operations : %d\n", totalOps)
	fmt.Printf("Total Time       : %v\n", duration)
	fmt.Printf("Throughput       : %.2f ops/sec\n", float64(totalOps)/duration.Seconds())
	fmt.Println("=========================================")
}
