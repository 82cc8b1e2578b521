package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"gps/cmd/fx/cache_fx"
	"gps/cmd/fx/config_fx"
	"gps/cmd/fx/controllers_fx"
	"gps/cmd/fx/db_fx"
	"gps/cmd/fx/logger_fx"
	"gps/cmd/fx/pois_fx"
	"gps/internal/api"
	"gps/internal/config"
)

func main() {
	app := fx.New(appOptions()...)
	app.Run()
}

func appOptions() []fx.Option {
	return []fx.Option{
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		cache_fx.Module,
		pois_fx.Module,
		controllers_fx.Module,

		fx.Provide(api.NewRouter),
		fx.Invoke(StartServer),
	}
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			ctx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}
