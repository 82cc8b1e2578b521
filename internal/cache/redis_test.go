package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gps/internal/models/db_models"
)

// TestRedisCache runs against a real server and is skipped unless
// REDIS_ADDR is set. It uses database 15 and flushes it.
func TestRedisCache(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	defer client.Close()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("FlushDB failed: %v", err)
	}

	c := NewRedisCache(client, time.Minute, zap.NewNop())
	if _, ok := c.Get(ctx); ok {
		t.Fatalf("Get on empty cache reported a hit")
	}

	c.Set(ctx, []db_models.POI{{Name: "Lanchonete", X: 27, Y: 12}})
	got, ok := c.Get(ctx)
	if !ok || len(got) != 1 || got[0].Name != "Lanchonete" || got[0].X != 27 || got[0].Y != 12 {
		t.Fatalf("Get = %+v, %v; want [Lanchonete 27 12], true", got, ok)
	}
	if ttl := client.TTL(ctx, RedisKey).Val(); ttl <= 0 || ttl > time.Minute {
		t.Errorf("TTL = %s, want (0, 1m]", ttl)
	}

	c.Invalidate(ctx)
	if _, ok := c.Get(ctx); ok {
		t.Errorf("Get after Invalidate reported a hit")
	}
}

func TestRedisCache_DecodeFailureIsMiss(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	defer client.Close()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	if err := client.Set(ctx, RedisKey, "not json", time.Minute).Err(); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	defer client.Del(ctx, RedisKey)

	if _, ok := NewRedisCache(client, time.Minute, zap.NewNop()).Get(ctx); ok {
		t.Errorf("undecodable snapshot reported as a hit")
	}
}

// unreachableClient points at a port with no listener so every command fails fast.
func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestRedisCache_ServerDownIsMiss(t *testing.T) {
	ctx := context.Background()
	client := unreachableClient()
	defer client.Close()

	c := NewRedisCache(client, time.Minute, zap.NewNop())
	c.Set(ctx, []db_models.POI{{Name: "Pub", X: 12, Y: 8}})
	if got, ok := c.Get(ctx); ok || got != nil {
		t.Errorf("Get with redis down = %+v, %v; want nil, false", got, ok)
	}
	c.Invalidate(ctx)
}
