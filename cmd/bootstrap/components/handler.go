package components

import (
	"go.uber.org/fx"

	"github.com/KostasTheodoro/GArts-Edu/internal/handler"
	"github.com/KostasTheodoro/GArts-Edu/internal/handler/api"
	"github.com/KostasTheodoro/GArts-Edu/internal/handler/dto/request"
	"github.com/KostasTheodoro/GArts-Edu/internal/handler/middleware"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/config"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewWizardHandler,
		middleware.NewSessionMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
		func(
			catalog *api.CatalogHandler,
			availability *api.AvailabilityHandler,
			bookings *api.BookingHandler,
			wizard *api.WizardHandler,
		) handler.Handlers {
			return handler.Handlers{
				Catalog:      catalog,
				Availability: availability,
				Booking:      bookings,
				Wizard:       wizard,
			}
		},
	),
	fx.Invoke(
		request.RegisterValidators,
		handler.NewRouter,
	),
)
