package bootstrap

import (
	"go.uber.org/fx"

	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/config"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/errs"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/jwt"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	if cfg.JWT.Duration <= 0 {
		return nil, errs.Newf("JWT_DURATION must be positive, got %s", cfg.JWT.Duration)
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration), nil
}
