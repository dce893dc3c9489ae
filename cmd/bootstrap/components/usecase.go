package components

import (
	"padel-club/internal/pkg/clock"
	"padel-club/internal/pkg/config"
	"padel-club/internal/usecase"
	"padel-club/internal/usecase/commands"
	"padel-club/internal/usecase/queries"
	"padel-club/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config, clk clock.Clock) (*shared.Calendar, error) {
		return shared.NewCalendar(cfg.Schedule, clk)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewExpander,
		commands.NewAuthCommands,
		commands.NewCourtCommands,
		commands.NewReservationCommands,
		commands.NewRecurrenceCommands,
		commands.NewUserCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCourtQueries,
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
		queries.NewRecurrenceQueries,
		queries.NewUserQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
