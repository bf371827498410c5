package components

import (
	"time"

	"go.uber.org/fx"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/clock"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/config"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/commands"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/queries"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewDefaultPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	func(cfg config.Config) *time.Location {
		return cfg.Provider.Location()
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewWizardUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewSessionTokens,
	),
)
