package queries

//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../../../tests/mock/queries/mock_user.go -package=mock_queries

import (
	"context"

	"padel-club/internal/domain/access"
	"padel-club/internal/infra"
	"padel-club/internal/pkg/errs"
)

var ErrUserNotFound = errs.NotFound("user")

type UserReadStore interface {
	FindByID(ctx context.Context, id int64) (*UserView, error)
	List(ctx context.Context) ([]*UserView, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, actor access.Actor) (*UserView, error)
	GetByID(ctx context.Context, actor access.Actor, id int64) (*UserView, error)
	List(ctx context.Context, actor access.Actor) ([]*UserView, error)
}

type userQueriesImpl struct {
	repo UserReadStore
}

func NewUserQueries(repo UserReadStore) UserQueries {
	return &userQueriesImpl{repo: repo}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, actor access.Actor) (*UserView, error) {
	return q.GetByID(ctx, actor, actor.UserID)
}

func (q *userQueriesImpl) GetByID(ctx context.Context, actor access.Actor, id int64) (*UserView, error) {
	if err := access.Admit(actor); err != nil {
		return nil, err
	}
	v, err := q.repo.FindByID(ctx, id)
	found := true
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		found = false
	}
	if err := access.AuthorizeOwned(actor, id, found); err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *userQueriesImpl) List(ctx context.Context, actor access.Actor) ([]*UserView, error) {
	if err := access.RequireAdmin(actor); err != nil {
		return nil, err
	}
	return q.repo.List(ctx)
}
