package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gps/internal/api/controllers"
	"gps/internal/config"
	"gps/internal/metrics"
	"gps/pkg/middleware"
)

func NewRouter(
	cfg *config.Config,
	log *zap.Logger,
	poisController *controllers.POIsController,
	healthController *controllers.HealthController) *gin.Engine {

	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.AccessLogMiddleware(log))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	RegisterRoutes(r, poisController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	poisController *controllers.POIsController,
	healthController *controllers.HealthController) {

	r.POST("/insert", poisController.InsertPoi)
	r.GET("/get-all", poisController.GetAllPois)
	r.GET("/search", poisController.SearchPois)

	r.GET("/healthz", healthController.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
}
