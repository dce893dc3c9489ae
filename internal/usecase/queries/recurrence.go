package queries

//go:generate go run go.uber.org/mock/mockgen -source=recurrence.go -destination=../../../tests/mock/queries/mock_recurrence.go -package=mock_queries

import (
	"context"

	"padel-club/internal/domain/access"
)

type RuleReadStore interface {
	ListByUser(ctx context.Context, userID int64) ([]*RuleView, error)
}

type RecurrenceQueries interface {
	ListMine(ctx context.Context, actor access.Actor) ([]*RuleView, error)
}

type recurrenceQueriesImpl struct {
	repo RuleReadStore
}

func NewRecurrenceQueries(repo RuleReadStore) RecurrenceQueries {
	return &recurrenceQueriesImpl{repo: repo}
}

func (q *recurrenceQueriesImpl) ListMine(ctx context.Context, actor access.Actor) ([]*RuleView, error) {
	if err := access.Admit(actor); err != nil {
		return nil, err
	}
	return q.repo.ListByUser(ctx, actor.UserID)
}
