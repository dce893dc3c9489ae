package shared

//go:generate go run go.uber.org/mock/mockgen -source=ports.go -destination=../../../tests/mock/shared/mock_ports.go -package=mock_shared

import (
	"context"

	"padel-club/internal/domain/schedule"
)

// CachedStarts is one cache lookup. Generation is the invalidation counter
// seen by the read and is handed back on the fill that follows a miss.
type CachedStarts struct {
	Starts     []schedule.ClockTime
	Found      bool
	Generation int64
}

// AvailabilityCache holds the confirmed start times of a court on a date.
// A miss returns Found == false with a nil error. SetConfirmedStarts drops the
// write when an Invalidate ran after the read that produced generation.
type AvailabilityCache interface {
	GetConfirmedStarts(ctx context.Context, courtID int64, date schedule.Date) (CachedStarts, error)
	SetConfirmedStarts(ctx context.Context, courtID int64, date schedule.Date, generation int64, starts []schedule.ClockTime) error
	Invalidate(ctx context.Context, courtID int64, date schedule.Date) error
}

// Event routing keys on the club exchange.
const (
	EventBookingCreated      = "booking.created"
	EventBookingCanceled     = "booking.canceled"
	EventRecurrenceCreated   = "recurrence.created"
	EventRecurrenceCanceled  = "recurrence.canceled"
	EventRecurrenceConflict  = "recurrence.conflict"
	EventRecurrenceSweepDone = "recurrence.sweep_done"
)

// EventPublisher delivers domain events. Publishing is best effort: callers
// log failures and carry on.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

type BookingEvent struct {
	ReservationID   int64  `json:"idReserva"`
	CourtID         int64  `json:"idCancha"`
	UserID          int64  `json:"idUsuario"`
	Date            string `json:"fechaReserva"`
	Start           string `json:"horaInicio"`
	End             string `json:"horaFin"`
	Status          string `json:"estado"`
	RecurringRuleID *int64 `json:"idReservaRecurrente,omitempty"`
}

type RecurrenceConflictEvent struct {
	RuleID  int64  `json:"idReservaRecurrente"`
	CourtID int64  `json:"idCancha"`
	UserID  int64  `json:"idUsuario"`
	Date    string `json:"fecha"`
	Start   string `json:"horaInicio"`
}

type RuleEvent struct {
	RuleID  int64 `json:"idReservaRecurrente"`
	CourtID int64 `json:"idCancha"`
	UserID  int64 `json:"idUsuario"`
	Weekday int   `json:"diaSemana"`
}
