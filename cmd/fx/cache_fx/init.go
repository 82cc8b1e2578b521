package cache_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"gps/internal/cache"
	"gps/internal/config"
	"gps/internal/infra"
)

var Module = fx.Provide(provideCache)

func provideCache(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (cache.POICache, error) {
	switch cfg.CacheDriver {
	case config.CacheMemory:
		log.Info("poi listing cache enabled", zap.String("driver", "memory"), zap.Duration("ttl", cfg.CacheTTL))
		return cache.NewMemoryCache(cfg.CacheTTL), nil
	case config.CacheRedis:
		client, err := infra.InitRedis(context.Background(), cfg, log)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
		log.Info("poi listing cache enabled", zap.String("driver", "redis"), zap.Duration("ttl", cfg.CacheTTL))
		return cache.NewRedisCache(client, cfg.CacheTTL, log), nil
	default:
		return cache.NewNoop(), nil
	}
}
