package commands

import (
	"context"

	"padel-club/internal/domain/reservation"
	"padel-club/internal/infra"
	"padel-club/internal/pkg/errs"
	"padel-club/internal/usecase/shared"
)

// bookSlot is the conflict guard. It must run inside the caller's
// transaction: the advisory lock is held until commit, so a concurrent
// writer on the same (court, date, start) waits and then sees the row.
func bookSlot(ctx context.Context, tx shared.Tx, res *reservation.Reservation) (int64, error) {
	repo := tx.Reservations()
	if err := repo.LockSlot(ctx, res.CourtID(), res.Date(), res.Start()); err != nil {
		return 0, err
	}

	owner, taken, err := repo.ConfirmedOwner(ctx, res.CourtID(), res.Date(), res.Start())
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, &slotTakenError{err: reservation.Occupied(res.CourtID(), res.Date(), res.Start()), owner: owner}
	}

	id, err := repo.Create(ctx, res)
	if err != nil {
		if infra.IsDuplicateOn(err, infra.IndexSlotConfirmed) {
			return 0, reservation.Occupied(res.CourtID(), res.Date(), res.Start())
		}
		return 0, err
	}
	return id, nil
}

// slotTakenError is a SlotOccupied error that knows who holds the slot.
type slotTakenError struct {
	err   error
	owner int64
}

func (e *slotTakenError) Error() string { return e.err.Error() }
func (e *slotTakenError) Unwrap() error { return e.err }

// heldBy reports whether err is an occupied slot confirmed to userID.
func heldBy(err error, userID int64) bool {
	var taken *slotTakenError
	return errs.As(err, &taken) && taken.owner == userID
}

func bookingEvent(id int64, res *reservation.Reservation, status reservation.Status) shared.BookingEvent {
	return shared.BookingEvent{
		ReservationID:   id,
		CourtID:         res.CourtID(),
		UserID:          res.UserID(),
		Date:            res.Date().String(),
		Start:           res.Start().String(),
		End:             res.End().String(),
		Status:          status.String(),
		RecurringRuleID: res.RecurringRuleID(),
	}
}
