package queries

//go:generate go run go.uber.org/mock/mockgen -source=court.go -destination=../../../tests/mock/queries/mock_court.go -package=mock_queries

import (
	"context"

	"padel-club/internal/domain/access"
	"padel-club/internal/infra"
	"padel-club/internal/pkg/errs"
)

var ErrCourtNotFound = errs.NotFound("court")

type CourtReadStore interface {
	FindByID(ctx context.Context, id int64) (*CourtView, error)
	List(ctx context.Context, includeInactive bool) ([]*CourtView, error)
}

type CourtQueries interface {
	List(ctx context.Context, actor access.Actor, includeInactive bool) ([]*CourtView, error)
	GetByID(ctx context.Context, actor access.Actor, id int64) (*CourtView, error)
}

type courtQueriesImpl struct {
	repo CourtReadStore
}

func NewCourtQueries(repo CourtReadStore) CourtQueries {
	return &courtQueriesImpl{repo: repo}
}

// List hides inactive courts from players regardless of the flag.
func (q *courtQueriesImpl) List(ctx context.Context, actor access.Actor, includeInactive bool) ([]*CourtView, error) {
	if err := access.Admit(actor); err != nil {
		return nil, err
	}
	return q.repo.List(ctx, includeInactive && actor.IsAdmin())
}

func (q *courtQueriesImpl) GetByID(ctx context.Context, actor access.Actor, id int64) (*CourtView, error) {
	if err := access.Admit(actor); err != nil {
		return nil, err
	}
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	if !v.Active && !actor.IsAdmin() {
		return nil, ErrCourtNotFound
	}
	return v, nil
}
