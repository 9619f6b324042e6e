package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func TestNewRedisCacheUnreachable(t *testing.T) {
	_, err := NewRedisCache(context.Background(), &RedisConfig{
		Host:        "127.0.0.1",
		Port:        1,
		DialTimeout: 200 * time.Millisecond,
		ReadTimeout: 200 * time.Millisecond,
	})
	if err == nil {
		t.Fatal("expected ping error for unreachable redis")
	}
}

type job struct {
	ID      string `json:"id"`
	Attempt int    `json:"attempt"`
}

// newTestCache dials REDIS_ADDR and returns the cache with a list key unique
// to the test. The key is removed on cleanup.
func newTestCache(t *testing.T) (*RedisCache, string) {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	cache, err := NewRedisCacheFromClient(context.Background(), rdb)
	if err != nil {
		t.Fatalf("NewRedisCacheFromClient(%s): %v", addr, err)
	}

	key := "test:" + t.Name() + ":" + uuid.NewString()
	t.Cleanup(func() {
		_ = rdb.Del(context.Background(), key).Err()
		_ = cache.Close()
	})
	return cache, key
}

func TestPushPopJSONIsFIFO(t *testing.T) {
	cache, key := newTestCache(t)
	ctx := context.Background()

	for i, id := range []string{"a", "b", "c"} {
		if err := cache.PushJSON(ctx, key, job{ID: id, Attempt: i}); err != nil {
			t.Fatalf("PushJSON(%s): %v", id, err)
		}
	}

	n, err := cache.Len(ctx, key)
	if err != nil {
		t.Fatalf("Len: %v", err)
	}
	if n != 3 {
		t.Fatalf("Len = %d, want 3", n)
	}

	for i, want := range []string{"a", "b", "c"} {
		var got job
		ok, err := cache.PopJSON(ctx, key, time.Second, &got)
		if err != nil || !ok {
			t.Fatalf("PopJSON #%d: ok=%v err=%v", i, ok, err)
		}
		if got.ID != want || got.Attempt != i {
			t.Fatalf("PopJSON #%d = %+v, want id %s", i, got, want)
		}
	}

	if n, _ := cache.Len(ctx, key); n != 0 {
		t.Fatalf("Len after drain = %d, want 0", n)
	}
}

func TestPopJSONTimeout(t *testing.T) {
	cache, key := newTestCache(t)

	var got job
	start := time.Now()
	ok, err := cache.PopJSON(context.Background(), key, time.Second, &got)
	if err != nil {
		t.Fatalf("PopJSON on empty list: %v", err)
	}
	if ok {
		t.Fatalf("PopJSON on empty list returned %+v", got)
	}
	if elapsed := time.Since(start); elapsed < 900*time.Millisecond {
		t.Fatalf("PopJSON returned after %v, want it to wait for the timeout", elapsed)
	}
}

func TestPopJSONRejectsNonJSON(t *testing.T) {
	cache, key := newTestCache(t)
	ctx := context.Background()

	if err := cache.client.LPush(ctx, key, "not json").Err(); err != nil {
		t.Fatalf("LPush: %v", err)
	}

	var got job
	ok, err := cache.PopJSON(ctx, key, time.Second, &got)
	if err == nil || ok {
		t.Fatalf("PopJSON = ok %v, err %v; want a decode error", ok, err)
	}
}
