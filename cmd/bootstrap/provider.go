package bootstrap

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/KostasTheodoro/GArts-Edu/internal/infra/calcom"
	"github.com/KostasTheodoro/GArts-Edu/internal/infra/readstore"
	"github.com/KostasTheodoro/GArts-Edu/internal/infra/writerepo"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/config"
)

var ProviderModule = fx.Module("provider",
	fx.Provide(
		fx.Annotate(
			NewCalcomClient,
			fx.As(new(readstore.EventTypeAPI)),
			fx.As(new(readstore.SlotAPI)),
			fx.As(new(readstore.BookingAPI)),
			fx.As(new(writerepo.BookingWriteAPI)),
		),
	),
)

func NewCalcomClient(cfg config.Config, logger *slog.Logger) *calcom.Client {
	return calcom.NewClient(cfg.Provider, logger)
}
