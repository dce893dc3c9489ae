package queries

//go:generate go run go.uber.org/mock/mockgen -source=availability.go -destination=../../../tests/mock/queries/mock_availability.go -package=mock_queries

import (
	"context"
	"log/slog"

	"padel-club/internal/domain/access"
	"padel-club/internal/domain/reservation"
	"padel-club/internal/domain/schedule"
	"padel-club/internal/infra"
	"padel-club/internal/pkg/metrics"
	"padel-club/internal/usecase/shared"
)

// ConfirmedStartsReader is the DB fallback behind the availability cache.
type ConfirmedStartsReader interface {
	ConfirmedStarts(ctx context.Context, courtID int64, date schedule.Date) ([]schedule.ClockTime, error)
}

type AvailabilityQueries interface {
	Template() []SlotView
	ForCourt(ctx context.Context, actor access.Actor, courtID int64, date schedule.Date) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	courts   CourtReadStore
	bookings ConfirmedStartsReader
	cache    shared.AvailabilityCache
	calendar *shared.Calendar
	logger   *slog.Logger
}

func NewAvailabilityQueries(
	courts CourtReadStore,
	bookings ConfirmedStartsReader,
	cache shared.AvailabilityCache,
	calendar *shared.Calendar,
	logger *slog.Logger,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		courts:   courts,
		bookings: bookings,
		cache:    cache,
		calendar: calendar,
		logger:   logger,
	}
}

func (q *availabilityQueriesImpl) Template() []SlotView {
	slots := q.calendar.Window.Slots()
	out := make([]SlotView, len(slots))
	for i, s := range slots {
		out[i] = SlotView{Start: s.Start.String(), End: s.End.String(), Available: true}
	}
	return out
}

// ForCourt resolves the day's grid from confirmed starts. When neither the
// cache nor the database can answer, every slot comes back unknown and the
// view is flagged degraded.
func (q *availabilityQueriesImpl) ForCourt(ctx context.Context, actor access.Actor, courtID int64, date schedule.Date) (*AvailabilityView, error) {
	if err := access.Admit(actor); err != nil {
		return nil, err
	}

	court, err := q.courts.FindByID(ctx, courtID)
	switch {
	case err == nil:
		if !court.Active && !actor.IsAdmin() {
			return nil, ErrCourtNotFound
		}
	case infra.IsKind(err, infra.KindNotFound):
		return nil, ErrCourtNotFound
	default:
		q.logger.Warn("court lookup failed, availability degraded",
			"court_id", courtID, "date", date.String(), "error", err)
		return q.degraded(courtID, date), nil
	}

	cached, cacheErr := q.cache.GetConfirmedStarts(ctx, courtID, date)
	if cacheErr != nil {
		q.logger.Warn("availability cache read failed", "court_id", courtID, "date", date.String(), "error", cacheErr)
	}
	starts := cached.Starts
	if cached.Found {
		metrics.IncAvailabilityLookup(metrics.LookupCache)
	} else {
		starts, err = q.bookings.ConfirmedStarts(ctx, courtID, date)
		if err != nil {
			q.logger.Error("availability lookup failed",
				"court_id", courtID, "date", date.String(), "error", err)
			return q.degraded(courtID, date), nil
		}
		metrics.IncAvailabilityLookup(metrics.LookupDB)
		// a failed read leaves no generation to fill against
		if cacheErr == nil {
			if err := q.cache.SetConfirmedStarts(ctx, courtID, date, cached.Generation, starts); err != nil {
				q.logger.Warn("availability cache write failed", "court_id", courtID, "date", date.String(), "error", err)
			}
		}
	}

	booked := make([]reservation.Booked, len(starts))
	for i, s := range starts {
		booked[i] = reservation.Booked{Start: s, Status: reservation.StatusConfirmed}
	}
	return toAvailabilityView(courtID, date, false, reservation.ResolveAvailability(q.calendar.Window, booked)), nil
}

func (q *availabilityQueriesImpl) degraded(courtID int64, date schedule.Date) *AvailabilityView {
	metrics.IncAvailabilityLookup(metrics.LookupDegraded)
	return toAvailabilityView(courtID, date, true, reservation.UnverifiedAvailability(q.calendar.Window))
}

func toAvailabilityView(courtID int64, date schedule.Date, degraded bool, slots []reservation.SlotAvailability) *AvailabilityView {
	out := make([]SlotView, len(slots))
	for i, s := range slots {
		out[i] = SlotView{
			Start:     s.Slot.Start.String(),
			End:       s.Slot.End.String(),
			State:     string(s.State),
			Available: s.Available(),
		}
	}
	return &AvailabilityView{Date: date.String(), CourtID: courtID, Degraded: degraded, Slots: out}
}
