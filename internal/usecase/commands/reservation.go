package commands

//go:generate go run go.uber.org/mock/mockgen -source=reservation.go -destination=../../../tests/mock/commands/mock_reservation.go -package=mock_commands

import (
	"context"
	"log/slog"

	"padel-club/internal/domain/access"
	"padel-club/internal/domain/reservation"
	"padel-club/internal/domain/schedule"
	"padel-club/internal/infra"
	"padel-club/internal/pkg/errs"
	"padel-club/internal/pkg/metrics"
	"padel-club/internal/pkg/obs"
	"padel-club/internal/usecase/queries"
	"padel-club/internal/usecase/shared"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type CreateReservationInput struct {
	CourtID int64
	Date    schedule.Date
	Start   schedule.ClockTime
	// End is optional; when present it must match the slot length.
	End *schedule.ClockTime
}

type ReservationCommands interface {
	Create(ctx context.Context, actor access.Actor, in CreateReservationInput) (*queries.ReservationView, error)
	Cancel(ctx context.Context, actor access.Actor, id int64) error
}

type reservationCommandsImpl struct {
	uow       shared.UnitOfWork
	reads     queries.ReservationReadStore
	calendar  *shared.Calendar
	cache     shared.AvailabilityCache
	publisher shared.EventPublisher
	logger    *slog.Logger
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	reads queries.ReservationReadStore,
	calendar *shared.Calendar,
	cache shared.AvailabilityCache,
	publisher shared.EventPublisher,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:       uow,
		reads:     reads,
		calendar:  calendar,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}
}

func (c *reservationCommandsImpl) Create(ctx context.Context, actor access.Actor, in CreateReservationInput) (*queries.ReservationView, error) {
	ctx, span := obs.Tracer().Start(ctx, "reservation.create")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("court.id", in.CourtID),
		attribute.String("booking.date", in.Date.String()),
		attribute.String("booking.start", in.Start.String()),
	)

	if err := access.Admit(actor); err != nil {
		return nil, err
	}

	res, err := reservation.NewReservation(c.calendar.Window, c.calendar.Now(), reservation.Request{
		CourtID: in.CourtID,
		UserID:  actor.UserID,
		Date:    in.Date,
		Start:   in.Start,
	})
	if err != nil {
		return nil, err
	}
	if in.End != nil && !in.End.Equal(res.End()) {
		return nil, errs.NewInvalidSlot(in.Start.String()+"-"+in.End.String(),
			"slot must end at "+res.End().String())
	}

	var id int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		court, err := tx.Courts().FindByID(ctx, in.CourtID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return queries.ErrCourtNotFound
			}
			return err
		}
		if err := court.EnsureBookable(); err != nil {
			return err
		}
		id, err = bookSlot(ctx, tx, res)
		return err
	})
	if err != nil {
		outcome := metrics.OutcomeFailed
		if errs.Is(err, errs.ErrSlotOccupied) {
			outcome = metrics.OutcomeConflict
		}
		metrics.IncBooking(metrics.SourceManual, outcome)
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		return nil, err
	}
	metrics.IncBooking(metrics.SourceManual, metrics.OutcomeCreated)
	span.SetAttributes(attribute.Int64("booking.id", id))

	invalidate(ctx, c.logger, c.cache, res.CourtID(), res.Date())
	publish(ctx, c.logger, c.publisher, shared.EventBookingCreated, bookingEvent(id, res, res.Status()))
	c.logger.Info("booking created",
		"reservation_id", id, "court_id", res.CourtID(), "user_id", res.UserID(),
		"date", res.Date().String(), "start", res.Start().String())

	return c.reads.FindByID(ctx, id)
}

// Cancel frees the slot. Players may only cancel their own bookings.
func (c *reservationCommandsImpl) Cancel(ctx context.Context, actor access.Actor, id int64) error {
	var canceled *reservation.Reservation
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, id)
		found := true
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
			found = false
		}
		var owner int64
		if found {
			owner = res.UserID()
		}
		if err := access.AuthorizeOwned(actor, owner, found); err != nil {
			if errs.Is(err, errs.ErrNotFound) {
				return queries.ErrReservationNotFound
			}
			return err
		}
		if err := res.Cancel(); err != nil {
			return err
		}
		if err := tx.Reservations().UpdateStatus(ctx, id, res.Status()); err != nil {
			return err
		}
		canceled = res
		return nil
	})
	if err != nil {
		return err
	}

	invalidate(ctx, c.logger, c.cache, canceled.CourtID(), canceled.Date())
	publish(ctx, c.logger, c.publisher, shared.EventBookingCanceled, bookingEvent(id, canceled, canceled.Status()))
	c.logger.Info("booking canceled", "reservation_id", id, "actor_id", actor.UserID)
	return nil
}
