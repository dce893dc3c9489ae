package commands

//go:generate go run go.uber.org/mock/mockgen -source=court.go -destination=../../../tests/mock/commands/mock_court.go -package=mock_commands

import (
	"context"
	"log/slog"

	"padel-club/internal/domain/access"
	"padel-club/internal/domain/court"
	"padel-club/internal/infra"
	"padel-club/internal/pkg/patch"
	"padel-club/internal/usecase/queries"
	"padel-club/internal/usecase/shared"
)

type CreateCourtInput struct {
	Number      int
	Category    string
	Description string
}

// UpdateCourtInput is a partial update; nil fields keep their value.
type UpdateCourtInput struct {
	Number      *int
	Category    *string
	Description *string
	Active      *bool
}

type CourtCommands interface {
	Create(ctx context.Context, actor access.Actor, in CreateCourtInput) (*queries.CourtView, error)
	Update(ctx context.Context, actor access.Actor, id int64, in UpdateCourtInput) (*queries.CourtView, error)
	Deactivate(ctx context.Context, actor access.Actor, id int64) error
}

type courtCommandsImpl struct {
	uow    shared.UnitOfWork
	reads  queries.CourtReadStore
	logger *slog.Logger
}

func NewCourtCommands(uow shared.UnitOfWork, reads queries.CourtReadStore, logger *slog.Logger) CourtCommands {
	return &courtCommandsImpl{uow: uow, reads: reads, logger: logger}
}

func (c *courtCommandsImpl) Create(ctx context.Context, actor access.Actor, in CreateCourtInput) (*queries.CourtView, error) {
	if err := access.RequireAdmin(actor); err != nil {
		return nil, err
	}
	category, err := court.NewCategory(in.Category)
	if err != nil {
		return nil, err
	}
	ct, err := court.NewCourt(in.Number, category, in.Description)
	if err != nil {
		return nil, err
	}

	var id int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Courts().Create(ctx, ct)
		return mapCourtErr(err)
	})
	if err != nil {
		return nil, err
	}
	c.logger.Info("court created", "court_id", id, "number", in.Number, "actor_id", actor.UserID)
	return c.reads.FindByID(ctx, id)
}

func (c *courtCommandsImpl) Update(ctx context.Context, actor access.Actor, id int64, in UpdateCourtInput) (*queries.CourtView, error) {
	if err := access.RequireAdmin(actor); err != nil {
		return nil, err
	}
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ct, err := tx.Courts().FindByID(ctx, id)
		if err != nil {
			return mapCourtErr(err)
		}
		category, err := court.NewCategory(patch.Coalesce(in.Category, ct.Category().String()))
		if err != nil {
			return err
		}
		if err := ct.Update(
			patch.Coalesce(in.Number, ct.Number()),
			category,
			patch.Coalesce(in.Description, ct.Description()),
			patch.Coalesce(in.Active, ct.IsActive()),
		); err != nil {
			return err
		}
		return mapCourtErr(tx.Courts().Update(ctx, ct))
	})
	if err != nil {
		return nil, err
	}
	c.logger.Info("court updated", "court_id", id, "actor_id", actor.UserID)
	return c.reads.FindByID(ctx, id)
}

// Deactivate is a soft delete; existing bookings keep their court.
func (c *courtCommandsImpl) Deactivate(ctx context.Context, actor access.Actor, id int64) error {
	if err := access.RequireAdmin(actor); err != nil {
		return err
	}
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ct, err := tx.Courts().FindByID(ctx, id)
		if err != nil {
			return mapCourtErr(err)
		}
		ct.Deactivate()
		return mapCourtErr(tx.Courts().Update(ctx, ct))
	})
	if err != nil {
		return err
	}
	c.logger.Info("court deactivated", "court_id", id, "actor_id", actor.UserID)
	return nil
}

func mapCourtErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return queries.ErrCourtNotFound
	case infra.IsDuplicateOn(err, infra.IndexCourtNumber):
		return court.ErrDuplicateCourtNumber
	default:
		return err
	}
}
