package bootstrap

import (
	"go.uber.org/fx"

	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/config"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

// NewConfig loads the environment and refuses to start on settings the
// booking flow cannot work with.
func NewConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
