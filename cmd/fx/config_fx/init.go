package config_fx

import (
	"go.uber.org/fx"

	"gps/internal/config"
)

var Module = fx.Provide(config.Load)
