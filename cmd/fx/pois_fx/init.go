package pois_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gps/internal/cache"
	"gps/internal/config"
	"gps/internal/repositories"
	"gps/internal/services"
)

var Module = fx.Options(
	fx.Provide(providePoisRepo, providePoisService, provideSeedService),
	fx.Invoke(registerSeeder),
)

func providePoisRepo(db *gorm.DB) repositories.POIRepository {
	return repositories.NewPOIRepository(db)
}

func providePoisService(poiRepo repositories.POIRepository, poiCache cache.POICache, log *zap.Logger) services.POIServiceInterface {
	return services.NewPOIService(poiRepo, poiCache, log)
}

func provideSeedService(poiRepo repositories.POIRepository, poiService services.POIServiceInterface, log *zap.Logger) *services.SeedService {
	return services.NewSeedService(poiRepo, poiService, log)
}

func registerSeeder(lc fx.Lifecycle, cfg *config.Config, seeder *services.SeedService) {
	if !cfg.SeedSamplePOIs {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, err := seeder.SeedIfEmpty(ctx, services.SamplePOIs)
			return err
		},
	})
}
