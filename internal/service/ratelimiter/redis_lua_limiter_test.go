package ratelimiter

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/differentialHQ/differential/internal/domain"
)

func newTestRedisLuaLimiter(t *testing.T) (*RedisLuaLimiter, func()) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	limiter := NewRedisLuaLimiter(rdb, nil, nil)

	cleanup := func() {
		_ = rdb.Close()
		mr.Close()
	}

	return limiter, cleanup
}

func TestAllow_NilLimiter_FailOpen(t *testing.T) {
	ctx := context.Background()
	var limiter *RedisLuaLimiter

	allowed, retryAfter, err := limiter.Allow(ctx, "any", 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !allowed {
		t.Fatalf("expected allowed to be true for nil limiter")
	}
	if retryAfter != 0 {
		t.Fatalf("expected zero retryAfter, got %v", retryAfter)
	}
}

func TestAllow_NoBucketConfig_FailOpen(t *testing.T) {
	ctx := context.Background()
	limiter, cleanup := newTestRedisLuaLimiter(t)
	defer cleanup()

	allowed, retryAfter, err := limiter.Allow(ctx, "unknown-bucket", 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !allowed {
		t.Fatalf("expected allowed to be true when no bucket config is present")
	}
	if retryAfter != 0 {
		t.Fatalf("expected zero retryAfter, got %v", retryAfter)
	}
}

func TestAllow_WithBucket_RespectsCapacityAndRetryAfter(t *testing.T) {
	ctx := context.Background()
	limiter, cleanup := newTestRedisLuaLimiter(t)
	defer cleanup()

	key := BucketKey("cluster-1", "orders", "createOrder")
	limiter.SetBucketConfig(key, BucketConfig{
		Capacity:   3,
		RefillRate: 0.000001,
	})

	for i := 0; i < 3; i++ {
		allowed, retryAfter, err := limiter.Allow(ctx, key, 1)
		if err != nil {
			t.Fatalf("unexpected error on allowed call %d: %v", i, err)
		}
		if !allowed {
			t.Fatalf("expected allowed=true on call %d", i)
		}
		if retryAfter != 0 {
			t.Fatalf("expected zero retryAfter on call %d, got %v", i, retryAfter)
		}
	}

	allowed, retryAfter, err := limiter.Allow(ctx, key, 1)
	if err != nil {
		t.Fatalf("unexpected error on blocked call: %v", err)
	}
	if allowed {
		t.Fatalf("expected allowed=false once the bucket is drained")
	}
	if retryAfter <= 0 {
		t.Fatalf("expected positive retryAfter, got %v", retryAfter)
	}
}

func TestAllow_BucketsAreIndependent(t *testing.T) {
	ctx := context.Background()
	limiter, cleanup := newTestRedisLuaLimiter(t)
	defer cleanup()

	drained := BucketKey("cluster-1", "orders", "createOrder")
	other := BucketKey("cluster-1", "orders", "cancelOrder")
	limiter.SetBucketConfig(drained, BucketConfig{Capacity: 1, RefillRate: 0.000001})
	limiter.SetBucketConfig(other, BucketConfig{Capacity: 1, RefillRate: 0.000001})

	if allowed, _, _ := limiter.Allow(ctx, drained, 1); !allowed {
		t.Fatalf("expected first admission to pass")
	}
	if allowed, _, _ := limiter.Allow(ctx, drained, 1); allowed {
		t.Fatalf("expected drained bucket to block")
	}
	if allowed, _, _ := limiter.Allow(ctx, other, 1); !allowed {
		t.Fatalf("expected sibling function bucket to stay open")
	}
}

func TestNewBucketConfigFromRate(t *testing.T) {
	cases := []struct {
		name     string
		rate     domain.FunctionRate
		capacity int64
		refill   float64
	}{
		{"per minute", domain.FunctionRate{Per: "minute", Limit: 60}, 60, 1.0},
		{"per hour", domain.FunctionRate{Per: "hour", Limit: 3600}, 3600, 1.0},
		{"unknown period", domain.FunctionRate{Per: "day", Limit: 10}, 0, 0},
		{"non-positive limit", domain.FunctionRate{Per: "minute", Limit: 0}, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewBucketConfigFromRate(tc.rate)
			if cfg.Capacity != tc.capacity {
				t.Fatalf("capacity: want %d got %d", tc.capacity, cfg.Capacity)
			}
			if cfg.RefillRate != tc.refill {
				t.Fatalf("refill: want %v got %v", tc.refill, cfg.RefillRate)
			}
		})
	}
}

func TestAllow_RefillRestoresTokens(t *testing.T) {
	ctx := context.Background()
	limiter, cleanup := newTestRedisLuaLimiter(t)
	defer cleanup()

	key := BucketKey("cluster-1", "orders", "fastFn")
	// 1000 tokens/second so the bucket visibly refills within the test.
	limiter.SetBucketConfig(key, BucketConfig{Capacity: 1, RefillRate: 1000})

	if allowed, _, _ := limiter.Allow(ctx, key, 1); !allowed {
		t.Fatalf("expected first admission to pass")
	}
	time.Sleep(10 * time.Millisecond)
	if allowed, _, _ := limiter.Allow(ctx, key, 1); !allowed {
		t.Fatalf("expected bucket to refill after sleep")
	}
}
