package errs

import (
	"fmt"
	"time"
)

// Scheduling error taxonomy shared by the domain, usecase and handler layers.
var (
	ErrInvalidSlot     = New("invalid slot")
	ErrSlotOccupied    = New("slot occupied")
	ErrWeekdayMismatch = New("weekday mismatch")
	ErrForbidden       = New("forbidden")
	ErrNotFound        = New("not found")
	ErrInactiveAccount = New("inactive account")

	ErrUnauthenticated = New("unauthenticated")
	ErrValidation      = New("validation failed")
	ErrConflict        = New("conflict")
	ErrUnavailable     = New("service unavailable")
)

type InvalidSlotError struct {
	Value  string
	Reason string
}

func (e *InvalidSlotError) Error() string {
	return fmt.Sprintf("invalid slot %q: %s", e.Value, e.Reason)
}

func (e *InvalidSlotError) Is(target error) bool { return target == ErrInvalidSlot }

func NewInvalidSlot(value, reason string) error {
	return &InvalidSlotError{Value: value, Reason: reason}
}

type SlotOccupiedError struct {
	CourtID int64
	Date    string
	Start   string
}

func (e *SlotOccupiedError) Error() string {
	return fmt.Sprintf("slot %s %s on court %d is already booked", e.Date, e.Start, e.CourtID)
}

func (e *SlotOccupiedError) Is(target error) bool { return target == ErrSlotOccupied }

type WeekdayMismatchError struct {
	Actual   time.Weekday
	Expected time.Weekday
}

func (e *WeekdayMismatchError) Error() string {
	return fmt.Sprintf("start date falls on %s but the rule weekday is %s", e.Actual, e.Expected)
}

func (e *WeekdayMismatchError) Is(target error) bool { return target == ErrWeekdayMismatch }

// Validation wraps a message so it matches ErrValidation.
func Validation(msg string) error {
	return Mark(New(msg), ErrValidation)
}

// NotFound names the missing record and matches ErrNotFound.
func NotFound(what string) error {
	return Mark(New(what+" not found"), ErrNotFound)
}

// Unavailable marks a backing-store failure the caller may retry.
func Unavailable(err error, msg string) error {
	return Mark(Wrap(err, msg), ErrUnavailable)
}
