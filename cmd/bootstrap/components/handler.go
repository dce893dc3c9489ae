package components

import (
	"padel-club/internal/handler"
	"padel-club/internal/handler/api"
	"padel-club/internal/handler/middleware"
	"padel-club/internal/pkg/clock"
	"padel-club/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCourtHandler,
		api.NewScheduleHandler,
		api.NewReservationHandler,
		api.NewRecurrenceHandler,
		api.NewUserHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
		func(cfg config.Config, clk clock.Clock) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit, clk)
		},
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	court *api.CourtHandler,
	schedule *api.ScheduleHandler,
	reservation *api.ReservationHandler,
	recurrence *api.RecurrenceHandler,
	user *api.UserHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Court:       court,
		Schedule:    schedule,
		Reservation: reservation,
		Recurrence:  recurrence,
		User:        user,
	}
}
