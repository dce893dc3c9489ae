package components

import (
	"padel-club/internal/infra/readstore"
	"padel-club/internal/infra/uow"
	"padel-club/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	fx.Provide(uow.NewPostgresUoW),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewCourtReadStore,
			fx.As(new(queries.CourtReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
			fx.As(new(queries.ConfirmedStartsReader)),
		),
		fx.Annotate(
			readstore.NewRuleReadStore,
			fx.As(new(queries.RuleReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)
