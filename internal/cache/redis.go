package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gps/internal/models/db_models"
)

const RedisKey = "gps:pois:all"

// RedisCache stores the listing snapshot as JSON under RedisKey, shared by
// every instance pointed at the same Redis database.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, log: log}
}

func (r *RedisCache) Get(ctx context.Context) ([]db_models.POI, bool) {
	raw, err := r.client.Get(ctx, RedisKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Warn("redis get poi snapshot", zap.Error(err))
		}
		return nil, false
	}
	var pois []db_models.POI
	if err := json.Unmarshal(raw, &pois); err != nil {
		r.log.Warn("decode poi snapshot", zap.Error(err))
		return nil, false
	}
	return pois, true
}

func (r *RedisCache) Set(ctx context.Context, pois []db_models.POI) {
	raw, err := json.Marshal(pois)
	if err != nil {
		r.log.Warn("encode poi snapshot", zap.Error(err))
		return
	}
	if err := r.client.Set(ctx, RedisKey, raw, r.ttl).Err(); err != nil {
		r.log.Warn("redis set poi snapshot", zap.Error(err))
	}
}

func (r *RedisCache) Invalidate(ctx context.Context) {
	if err := r.client.Del(ctx, RedisKey).Err(); err != nil {
		r.log.Warn("redis invalidate poi snapshot", zap.Error(err))
	}
}
