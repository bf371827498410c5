package bootstrap

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/KostasTheodoro/GArts-Edu/internal/handler/middleware"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/config"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log)
}
