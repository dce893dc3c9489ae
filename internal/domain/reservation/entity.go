package reservation

import (
	"time"

	"padel-club/internal/domain/schedule"
	"padel-club/internal/pkg/errs"
)

var (
	ErrReservationCanceled = errs.Mark(errs.New("reservation is already canceled"), errs.ErrConflict)
	ErrInvalidStatus       = errs.Mark(errs.New("invalid reservation status"), errs.ErrValidation)
	// ErrSlotStarted marks an invalid slot whose start time has already passed.
	ErrSlotStarted = errs.New("slot already started")
)

type Reservation struct {
	id              int64
	courtID         int64
	userID          int64
	date            schedule.Date
	slot            schedule.Slot
	status          Status
	recurringRuleID *int64
	createdAt       time.Time
	updatedAt       time.Time
}

// Request is a proposed booking before it reaches the conflict guard.
type Request struct {
	CourtID         int64
	UserID          int64
	Date            schedule.Date
	Start           schedule.ClockTime
	RecurringRuleID *int64
}

// NewReservation validates the requested start against the window and the
// current time and returns a confirmed reservation ready for insertion.
func NewReservation(w schedule.Window, now schedule.Instant, req Request) (*Reservation, error) {
	slot, err := w.SlotAt(req.Start)
	if err != nil {
		return nil, err
	}
	if req.Date.IsZero() {
		return nil, errs.NewInvalidSlot(req.Start.String(), "date is required")
	}
	value := req.Date.String() + " " + req.Start.String()
	if req.Date.Before(now.Date) {
		return nil, errs.NewInvalidSlot(value, "date is in the past")
	}
	if now.Reached(req.Date, req.Start) {
		return nil, errs.Mark(errs.NewInvalidSlot(value, "slot already started"), ErrSlotStarted)
	}
	return &Reservation{
		courtID:         req.CourtID,
		userID:          req.UserID,
		date:            req.Date,
		slot:            slot,
		status:          StatusConfirmed,
		recurringRuleID: req.RecurringRuleID,
	}, nil
}

func ReconstructReservation(
	id, courtID, userID int64,
	date schedule.Date,
	slot schedule.Slot,
	status Status,
	recurringRuleID *int64,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		courtID:         courtID,
		userID:          userID,
		date:            date,
		slot:            slot,
		status:          status,
		recurringRuleID: recurringRuleID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Cancel moves a pending or confirmed reservation to canceled.
func (r *Reservation) Cancel() error {
	if r.status == StatusCanceled {
		return ErrReservationCanceled
	}
	r.status = StatusCanceled
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status.BlocksSlot()
}

func (r *Reservation) IsCanceled() bool {
	return r.status == StatusCanceled
}

func (r *Reservation) ID() int64                 { return r.id }
func (r *Reservation) CourtID() int64            { return r.courtID }
func (r *Reservation) UserID() int64             { return r.userID }
func (r *Reservation) Date() schedule.Date       { return r.date }
func (r *Reservation) Slot() schedule.Slot       { return r.slot }
func (r *Reservation) Start() schedule.ClockTime { return r.slot.Start }
func (r *Reservation) End() schedule.ClockTime   { return r.slot.End }
func (r *Reservation) Status() Status            { return r.status }
func (r *Reservation) RecurringRuleID() *int64   { return r.recurringRuleID }
func (r *Reservation) CreatedAt() time.Time      { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time      { return r.updatedAt }

// Occupied builds the error returned when the guard finds the slot taken.
func Occupied(courtID int64, date schedule.Date, start schedule.ClockTime) error {
	return &errs.SlotOccupiedError{CourtID: courtID, Date: date.String(), Start: start.String()}
}
