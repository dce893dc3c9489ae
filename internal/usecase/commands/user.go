package commands

//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../../../tests/mock/commands/mock_user.go -package=mock_commands

import (
	"context"
	"log/slog"

	"padel-club/internal/domain/access"
	"padel-club/internal/domain/user"
	"padel-club/internal/infra"
	"padel-club/internal/usecase/queries"
	"padel-club/internal/usecase/shared"
)

type UserCommands interface {
	ChangeRole(ctx context.Context, actor access.Actor, id int64, role string) (*queries.UserView, error)
	SetActive(ctx context.Context, actor access.Actor, id int64, active bool) (*queries.UserView, error)
}

type userCommandsImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewUserCommands(uow shared.UnitOfWork, logger *slog.Logger) UserCommands {
	return &userCommandsImpl{uow: uow, logger: logger}
}

func (c *userCommandsImpl) ChangeRole(ctx context.Context, actor access.Actor, id int64, role string) (*queries.UserView, error) {
	r, err := user.NewRole(role)
	if err != nil {
		return nil, err
	}
	u, err := c.updateAccess(ctx, actor, id, func(u *user.User) error {
		return u.ChangeRole(actor.UserID, r)
	})
	if err != nil {
		return nil, err
	}
	c.logger.Info("user role changed", "user_id", id, "role", r.String(), "actor_id", actor.UserID)
	return userView(u), nil
}

// SetActive takes effect on the user's next request: the token validator
// reloads the account every time.
func (c *userCommandsImpl) SetActive(ctx context.Context, actor access.Actor, id int64, active bool) (*queries.UserView, error) {
	u, err := c.updateAccess(ctx, actor, id, func(u *user.User) error {
		return u.SetActive(actor.UserID, active)
	})
	if err != nil {
		return nil, err
	}
	c.logger.Info("user active flag changed", "user_id", id, "active", active, "actor_id", actor.UserID)
	return userView(u), nil
}

func (c *userCommandsImpl) updateAccess(ctx context.Context, actor access.Actor, id int64, apply func(*user.User) error) (*user.User, error) {
	if err := access.RequireAdmin(actor); err != nil {
		return nil, err
	}
	var updated *user.User
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return queries.ErrUserNotFound
			}
			return err
		}
		if err := apply(u); err != nil {
			return err
		}
		if err := tx.Users().UpdateAccess(ctx, u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	return updated, err
}

func userView(u *user.User) *queries.UserView {
	p := u.Profile()
	return &queries.UserView{
		ID:        u.ID(),
		DNI:       u.DNI().Value(),
		Email:     u.Email().Value(),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
		Role:      u.Role().String(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
	}
}
