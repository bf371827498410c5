package components

import (
	"go.uber.org/fx"

	"github.com/KostasTheodoro/GArts-Edu/internal/infra/readstore"
	"github.com/KostasTheodoro/GArts-Edu/internal/infra/repository"
	"github.com/KostasTheodoro/GArts-Edu/internal/infra/writerepo"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/config"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/commands"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/queries"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/shared"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewRedisConfig,
	NewWizardConfig,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Catalog
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.OfferingSource)),
			fx.As(new(commands.EventTypeReader)),
		),
		// Slots
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotSource)),
		),
		// Bookings
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingSource)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Reservation
		fx.Annotate(
			writerepo.NewReservationRepository,
			fx.As(new(commands.ReservationWriter)),
		),
		// Wizard sessions
		fx.Annotate(
			repository.NewSessionRepository,
			fx.As(new(shared.SessionStore)),
		),
		// Catalog cache
		fx.Annotate(
			repository.NewCatalogCacheRepository,
			fx.As(new(queries.CatalogCache)),
		),
		// Idempotency
		fx.Annotate(
			repository.NewIdempotencyRepository,
			fx.As(new(shared.IdempotencyStore)),
		),
	),
)

func NewRedisConfig(cfg config.Config) config.RedisConfig {
	return cfg.Redis
}

func NewWizardConfig(cfg config.Config) config.WizardConfig {
	return cfg.Wizard
}
