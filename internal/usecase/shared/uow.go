package shared

import (
	"context"

	"padel-club/internal/domain/court"
	"padel-club/internal/domain/recurrence"
	"padel-club/internal/domain/reservation"
	"padel-club/internal/domain/schedule"
	"padel-club/internal/domain/user"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes the write repositories bound to one transaction.
type Tx interface {
	Courts() CourtRepository
	Reservations() ReservationRepository
	Rules() RecurringRuleRepository
	Users() UserRepository
}

type CourtRepository interface {
	Create(ctx context.Context, c *court.Court) (int64, error)
	Update(ctx context.Context, c *court.Court) error
	// FindByID locks the row for the rest of the transaction.
	FindByID(ctx context.Context, id int64) (*court.Court, error)
}

type ReservationRepository interface {
	// LockSlot serializes writers on (court, date, start) until commit.
	LockSlot(ctx context.Context, courtID int64, date schedule.Date, start schedule.ClockTime) error
	// ConfirmedOwner returns the user holding a confirmed booking on the slot.
	ConfirmedOwner(ctx context.Context, courtID int64, date schedule.Date, start schedule.ClockTime) (userID int64, found bool, err error)
	ExistsForRule(ctx context.Context, ruleID int64, date schedule.Date) (bool, error)
	Create(ctx context.Context, r *reservation.Reservation) (int64, error)
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status reservation.Status) error
}

type RecurringRuleRepository interface {
	Create(ctx context.Context, r *recurrence.Rule) (int64, error)
	FindByID(ctx context.Context, id int64) (*recurrence.Rule, error)
	Deactivate(ctx context.Context, id int64) error
	ListActive(ctx context.Context) ([]*recurrence.Rule, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (int64, error)
	FindByID(ctx context.Context, id int64) (*user.User, error)
	FindByDNI(ctx context.Context, dni user.DNI) (*user.User, error)
	UpdateAccess(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, id int64) error
}
