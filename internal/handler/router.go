package handler

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/KostasTheodoro/GArts-Edu/internal/handler/api"
	"github.com/KostasTheodoro/GArts-Edu/internal/handler/middleware"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler mounted by the router.
type Handlers struct {
	Catalog      *api.CatalogHandler
	Availability *api.AvailabilityHandler
	Booking      *api.BookingHandler
	Wizard       *api.WizardHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, sessionMiddleware *middleware.SessionMiddleware, rateLimiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, sessionMiddleware, rateLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, sessionMiddleware *middleware.SessionMiddleware, rateLimiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(rateLimiter.Middleware())
	{
		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodGet, Path: "/event-types", Handler: h.Catalog.ListEventTypes},
			{Method: http.MethodPost, Path: "/availability", Handler: h.Availability.Slots},
			{Method: http.MethodPost, Path: "/available-dates", Handler: h.Availability.AvailableDates},
			{Method: http.MethodPost, Path: "/create", Handler: h.Booking.Create},
			{Method: http.MethodPost, Path: "/booking-count", Handler: h.Booking.Count},
		})

		wizard := apiGroup.Group("/wizard")
		{
			addRoutes(wizard, []route{
				{Method: http.MethodPost, Path: "/sessions", Handler: h.Wizard.Start},
			})

			session := wizard.Group("/session")
			requireSession := []gin.HandlerFunc{sessionMiddleware.RequireSession()}
			addRoutes(session, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Wizard.Get, Mw: requireSession},
				{Method: http.MethodPatch, Path: "", Handler: h.Wizard.Patch, Mw: requireSession},
				{Method: http.MethodDelete, Path: "", Handler: h.Wizard.Close, Mw: requireSession},
				{Method: http.MethodPost, Path: "/next", Handler: h.Wizard.Next, Mw: requireSession},
				{Method: http.MethodPost, Path: "/back", Handler: h.Wizard.Back, Mw: requireSession},
				{Method: http.MethodGet, Path: "/calendar", Handler: h.Wizard.Calendar, Mw: requireSession},
				{Method: http.MethodPost, Path: "/calendar", Handler: h.Wizard.Navigate, Mw: requireSession},
				{Method: http.MethodPost, Path: "/submit", Handler: h.Wizard.Submit, Mw: requireSession},
				{Method: http.MethodPost, Path: "/notice/dismiss", Handler: h.Wizard.DismissNotice, Mw: requireSession},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(slices.Clone(r.Mw), r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

// chainHandlers runs route middleware and the handler in order, stopping at
// the first abort.
func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
