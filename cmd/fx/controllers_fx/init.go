package controllers_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"gps/internal/api/controllers"
	"gps/internal/infra"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPOIsController),
	fx.Provide(controllers.NewHealthController),
	fx.Provide(provideDBPinger))

func provideDBPinger(db *gorm.DB) controllers.Pinger {
	return func(ctx context.Context) error {
		return infra.PingDatabase(ctx, db)
	}
}
