package queries

//go:generate go run go.uber.org/mock/mockgen -source=reservation.go -destination=../../../tests/mock/queries/mock_reservation.go -package=mock_queries

import (
	"context"
	"io"

	"padel-club/internal/domain/access"
	"padel-club/internal/domain/schedule"
	"padel-club/internal/infra"
	"padel-club/internal/pkg/errs"
)

var (
	ErrReservationNotFound = errs.NotFound("reservation")
	ErrInvalidCursor       = errs.Validation("invalid cursor")
	ErrInvalidPeriod       = errs.Validation("desde must not be after hasta")
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	ListByCourtAndDate(ctx context.Context, courtID int64, date schedule.Date) ([]*ReservationView, error)
	ListByUser(ctx context.Context, userID int64, page KeysetPage) ([]*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
}

// BookingExporter renders a booking listing into a downloadable document.
type BookingExporter interface {
	Write(w io.Writer, period string, rows []*ReservationView) error
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actor access.Actor, id int64) (*ReservationView, error)
	ListByCourtAndDate(ctx context.Context, actor access.Actor, courtID int64, date schedule.Date) ([]*ReservationView, error)
	ListMine(ctx context.Context, actor access.Actor, after *Cursor, limit int) ([]*ReservationView, *Cursor, error)
	List(ctx context.Context, actor access.Actor, filter ReservationFilter) ([]*ReservationView, error)
	Export(ctx context.Context, actor access.Actor, filter ReservationFilter, w io.Writer) error
}

type reservationQueriesImpl struct {
	repo     ReservationReadStore
	exporter BookingExporter
}

func NewReservationQueries(repo ReservationReadStore, exporter BookingExporter) ReservationQueries {
	return &reservationQueriesImpl{repo: repo, exporter: exporter}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor access.Actor, id int64) (*ReservationView, error) {
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
	var owner int64
	if found {
		owner = v.UserID
	}
	if err := access.AuthorizeOwned(actor, owner, found); err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return v, nil
}

// ListByCourtAndDate returns every booking of the day in any state. Players
// only see who booked their own rows.
func (q *reservationQueriesImpl) ListByCourtAndDate(ctx context.Context, actor access.Actor, courtID int64, date schedule.Date) ([]*ReservationView, error) {
	if err := access.Admit(actor); err != nil {
		return nil, err
	}
	rows, err := q.repo.ListByCourtAndDate(ctx, courtID, date)
	if err != nil {
		return nil, errs.Unavailable(err, "bookings could not be read")
	}
	if actor.IsAdmin() {
		return rows, nil
	}
	for _, r := range rows {
		if r.UserID != actor.UserID {
			r.UserDNI = ""
			r.UserName = ""
		}
	}
	return rows, nil
}

// ListMine returns every booking of the actor when neither limit nor cursor
// is given. Otherwise it returns one keyset page and the cursor of the next.
func (q *reservationQueriesImpl) ListMine(ctx context.Context, actor access.Actor, after *Cursor, limit int) ([]*ReservationView, *Cursor, error) {
	if err := access.Admit(actor); err != nil {
		return nil, nil, err
	}
	paged := after != nil && after.After != ""
	if limit <= 0 && !paged {
		rows, err := q.repo.ListByUser(ctx, actor.UserID, KeysetPage{})
		if err != nil {
			return nil, nil, err
		}
		return rows, nil, nil
	}

	limit = ValidateLimit(limit)
	page := KeysetPage{Limit: limit + 1}
	if paged {
		createdAt, id, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, ErrInvalidCursor
		}
		page.AfterCreatedAt = createdAt
		page.AfterID = id
	}

	rows, err := q.repo.ListByUser(ctx, actor.UserID, page)
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, actor access.Actor, filter ReservationFilter) ([]*ReservationView, error) {
	if err := access.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validatePeriod(filter); err != nil {
		return nil, err
	}
	return q.repo.List(ctx, filter)
}

func (q *reservationQueriesImpl) Export(ctx context.Context, actor access.Actor, filter ReservationFilter, w io.Writer) error {
	rows, err := q.List(ctx, actor, filter)
	if err != nil {
		return err
	}
	return q.exporter.Write(w, periodTitle(filter), rows)
}

func validatePeriod(f ReservationFilter) error {
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return ErrInvalidPeriod
	}
	return nil
}

func periodTitle(f ReservationFilter) string {
	from, to := "inicio", "hoy"
	if !f.From.IsZero() {
		from = f.From.String()
	}
	if !f.To.IsZero() {
		to = f.To.String()
	}
	return from + " - " + to
}
