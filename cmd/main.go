package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	cache "github.com/krisalay/ttl-cache"
	"github.com/krisalay/ttl-cache/config"
	"github.com/krisalay/ttl-cache/engine"
	"github.com/krisalay/ttl-cache/metrics"
)

func main() {
	seedPath := flag.String("seed", "", "YAML file of key: value pairs to pre-populate the cache with")
	seedTTL := flag.Duration("ttl", 0, "TTL applied to the seed entries (0 = never expire)")
	debug := flag.Bool("debug", false, "log cache internals")
	flag.Parse()

	logger := zap.NewNop()
	if *debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init logger:", err)
			os.Exit(1)
		}
		logger = l
	}
	defer logger.Sync()

	if err := run(logger, *seedPath, *seedTTL); err != nil {
		logger.Error("demo failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(logger *zap.Logger, seedPath string, seedTTL time.Duration) error {
	ctx := context.Background()

	fmt.Println("\n==================== SYSTEM BOOT ====================")

	// ---------------- Seed ----------------
	seed, err := config.LoadSeed(seedPath)
	if err != nil {
		return err
	}
	if len(seed) == 0 {
		seed = map[string]any{"a": "alpha", "b": "beta"}
	}
	fmt.Println("SEED ENTRIES    :", len(seed))
	fmt.Println("SEED TTL        :", ttlLabel(seedTTL))

	// ---------------- Metrics ----------------
	reg := prometheus.NewRegistry()
	m, err := metrics.NewPrometheus(reg, "demo")
	if err != nil {
		return err
	}

	// ---------------- Cache ----------------
	opts := []cache.Option{
		cache.WithEngine(engine.NewCacheEngine(nil, m, logger)),
		cache.WithSeed(seed),
	}
	if seedTTL > 0 {
		opts = append(opts, cache.WithDefaultTTL(seedTTL))
	}
	ttlCache, err := cache.New(opts...)
	if err != nil {
		return err
	}
	c := cache.NewLocked(ttlCache)

	// ====================================================
	fmt.Println("\n==================== 1) HIT & MISS ====================")
	v, _ := c.Get("a", "<default>")
	fmt.Println("CACHE  → GET a =", v)
	v, _ = c.Get("nope", "<default>")
	fmt.Println("CACHE  → GET nope =", v)

	// ====================================================
	fmt.Println("\n==================== 2) TTL EXPIRATION ====================")
	_, _ = c.SetWithTTL("x", "temp-value", time.Second)
	fmt.Println("CACHE  → SET x (TTL = 1s)")
	has, _ := c.Has("x")
	fmt.Println("CACHE  → HAS x =", has)

	time.Sleep(1100 * time.Millisecond)

	has, _ = c.Has("x")
	fmt.Println("CACHE  → HAS x after TTL =", has)

	_, _ = c.SetWithTTL("y", "stillborn", -time.Second)
	has, _ = c.Has("y")
	fmt.Println("CACHE  → HAS y (TTL = -1s) =", has)

	// ====================================================
	fmt.Println("\n==================== 3) BULK ====================")
	_, _ = c.SetMultiple(map[string]int{"one": 1, "two": 2})
	got, _ := c.GetMultiple([]string{"one", "two", "three"}, 0)
	for p := got.Oldest(); p != nil; p = p.Next() {
		fmt.Printf("CACHE  → %v = %v\n", p.Key, p.Value)
	}
	_, _ = c.DeleteMultiple([]string{"one", "two"})

	// ====================================================
	fmt.Println("\n==================== 4) REMEMBER ====================")
	loader := cache.NewLoader(c)
	wg := sync.WaitGroup{}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			val, _ := loader.Remember(ctx, "report", time.Minute, func(context.Context) (any, error) {
				fmt.Println("STORE  → load: report")
				time.Sleep(50 * time.Millisecond)
				return "expensive-report", nil
			})
			fmt.Printf("GOROUTINE-%d → GET report = %v\n", id, val)
		}(i)
	}
	wg.Wait()

	// ====================================================
	fmt.Println("\n==================== 5) INVALID INPUT ====================")
	_, err = c.Get([]string{"not", "scalar"}, nil)
	fmt.Println("CACHE  → GET []string =", err)
	_, err = c.SetMultiple("not-a-mapping")
	fmt.Println("CACHE  → SETMULTIPLE string =", err)

	// ====================================================
	fmt.Println("\n==================== 6) NULL CACHE ====================")
	var null cache.NullCache
	ok, _ := null.Set("a", "alpha")
	v, _ = null.Get("a", "<default>")
	fmt.Println("NULL   → SET a =", ok, "/ GET a =", v)

	// ====================================================
	printMetrics(reg)

	fmt.Println("\n==================== SHUTDOWN ====================")
	fmt.Println("SYSTEM → entries left:", c.Len(), "pruned:", c.Prune())
	c.Clear()
	return nil
}

func ttlLabel(d time.Duration) string {
	if d <= 0 {
		return "none"
	}
	return d.String()
}

func printMetrics(reg *prometheus.Registry) {
	fmt.Println("\n==================== METRICS ====================")
	families, err := reg.Gather()
	if err != nil {
		fmt.Println("gather metrics:", err)
		return
	}
	for _, f := range families {
		for _, m := range f.GetMetric() {
			fmt.Printf("%-32s: %.0f\n", f.GetName(), m.GetCounter().GetValue())
		}
	}
}
