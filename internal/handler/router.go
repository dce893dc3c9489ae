package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"padel-club/internal/handler/api"
	"padel-club/internal/handler/middleware"
	"padel-club/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Court       *api.CourtHandler
	Schedule    *api.ScheduleHandler
	Reservation *api.ReservationHandler
	Recurrence  *api.RecurrenceHandler
	User        *api.UserHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	limiter *middleware.RateLimiter,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	admin := []gin.HandlerFunc{authMiddleware.RequireAdmin()}
	limited := []gin.HandlerFunc{limiter.Limit()}

	auth := engine.Group("/auth")
	{
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: limited},
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: limited},
		})

		authRequired := auth.Group("")
		authRequired.Use(authMiddleware.RequireAuth())
		addRoutes(authRequired, []route{
			{Method: http.MethodGet, Path: "/profile", Handler: h.Auth.Profile},
		})
	}

	authed := engine.Group("")
	authed.Use(authMiddleware.RequireAuth())

	addRoutes(authed, []route{
		{Method: http.MethodGet, Path: "/horarios", Handler: h.Schedule.Template},
	})

	courts := authed.Group("/canchas")
	{
		addRoutes(courts, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Court.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Court.Get},
			{Method: http.MethodGet, Path: "/:id/disponibilidad", Handler: h.Court.Availability},
			{Method: http.MethodPost, Path: "", Handler: h.Court.Create, Mw: admin},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Court.Update, Mw: admin},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Court.Deactivate, Mw: admin},
		})
	}

	reservations := authed.Group("/reservas")
	{
		addRoutes(reservations, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List, Mw: admin},
			{Method: http.MethodGet, Path: "/export", Handler: h.Reservation.Export, Mw: admin},
			{Method: http.MethodGet, Path: "/mis-reservas", Handler: h.Reservation.ListMine},
			{Method: http.MethodGet, Path: "/cancha/:id", Handler: h.Reservation.ByCourtAndDate},
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create, Mw: limited},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Cancel, Mw: limited},
			{Method: http.MethodPatch, Path: "/:id/cancel", Handler: h.Reservation.Cancel, Mw: limited},
		})

		recurring := reservations.Group("/recurrente")
		addRoutes(recurring, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Recurrence.Create, Mw: limited},
			{Method: http.MethodGet, Path: "/mis-reservas", Handler: h.Recurrence.ListMine},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Recurrence.Cancel, Mw: limited},
			{Method: http.MethodPost, Path: "/materializar", Handler: h.Recurrence.Sweep, Mw: admin},
		})
	}

	users := authed.Group("/usuarios")
	{
		addRoutes(users, []route{
			{Method: http.MethodGet, Path: "", Handler: h.User.List, Mw: admin},
			{Method: http.MethodGet, Path: "/:id", Handler: h.User.Get},
			{Method: http.MethodPatch, Path: "/:id/rol", Handler: h.User.ChangeRole, Mw: admin},
			{Method: http.MethodPatch, Path: "/:id/estado", Handler: h.User.SetActive, Mw: admin},
		})
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
			h = chainHandlers(append(r.Mw, r.Handler)...)
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
