package recurrence

import (
	"time"

	"padel-club/internal/domain/schedule"
	"padel-club/internal/pkg/errs"
)

var (
	ErrInvalidWeekday  = errs.Mark(errs.New("weekday must be between 0 (Sunday) and 6 (Saturday)"), errs.ErrValidation)
	ErrInvalidRange    = errs.Mark(errs.New("end date must not be before start date"), errs.ErrValidation)
	ErrStartInPast     = errs.Mark(errs.New("start date must not be in the past"), errs.ErrValidation)
	ErrRuleInactive    = errs.Mark(errs.New("recurring reservation is already canceled"), errs.ErrConflict)
	ErrMissingFromDate = errs.Mark(errs.New("start date is required"), errs.ErrValidation)
)

// Rule is a standing weekly booking. Canceling a rule stops future
// materialization only; bookings already created stay as they are.
type Rule struct {
	id            int64
	courtID       int64
	userID        int64
	weekday       time.Weekday
	slot          schedule.Slot
	effectiveFrom schedule.Date
	effectiveTo   *schedule.Date
	active        bool
	createdAt     time.Time
	updatedAt     time.Time
}

type Params struct {
	CourtID       int64
	UserID        int64
	Weekday       int
	Start         schedule.ClockTime
	EffectiveFrom schedule.Date
	EffectiveTo   *schedule.Date
}

func NewRule(w schedule.Window, today schedule.Date, p Params) (*Rule, error) {
	if p.Weekday < 0 || p.Weekday > 6 {
		return nil, ErrInvalidWeekday
	}
	slot, err := w.SlotAt(p.Start)
	if err != nil {
		return nil, err
	}
	if p.EffectiveFrom.IsZero() {
		return nil, ErrMissingFromDate
	}
	expected := time.Weekday(p.Weekday)
	if actual := p.EffectiveFrom.Weekday(); actual != expected {
		return nil, &errs.WeekdayMismatchError{Actual: actual, Expected: expected}
	}
	if p.EffectiveFrom.Before(today) {
		return nil, ErrStartInPast
	}
	if p.EffectiveTo != nil && p.EffectiveTo.Before(p.EffectiveFrom) {
		return nil, ErrInvalidRange
	}
	return &Rule{
		courtID:       p.CourtID,
		userID:        p.UserID,
		weekday:       expected,
		slot:          slot,
		effectiveFrom: p.EffectiveFrom,
		effectiveTo:   p.EffectiveTo,
		active:        true,
	}, nil
}

func ReconstructRule(
	id, courtID, userID int64,
	weekday time.Weekday,
	slot schedule.Slot,
	effectiveFrom schedule.Date,
	effectiveTo *schedule.Date,
	active bool,
	createdAt, updatedAt time.Time,
) *Rule {
	return &Rule{
		id:            id,
		courtID:       courtID,
		userID:        userID,
		weekday:       weekday,
		slot:          slot,
		effectiveFrom: effectiveFrom,
		effectiveTo:   effectiveTo,
		active:        active,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Occurrences lists the rule's dates in [max(today, from), min(horizonEnd, to)],
// where horizonEnd is exclusive and the effective end date is inclusive.
func (r *Rule) Occurrences(today, horizonEnd schedule.Date) []schedule.Date {
	if !r.active {
		return nil
	}
	first := schedule.MaxDate(today, r.effectiveFrom).NextWeekday(r.weekday)

	var out []schedule.Date
	for d := first; d.Before(horizonEnd); d = d.AddDays(7) {
		if r.effectiveTo != nil && d.After(*r.effectiveTo) {
			break
		}
		out = append(out, d)
	}
	return out
}

func (r *Rule) Cancel() error {
	if !r.active {
		return ErrRuleInactive
	}
	r.active = false
	return nil
}

func (r *Rule) ID() int64                    { return r.id }
func (r *Rule) CourtID() int64               { return r.courtID }
func (r *Rule) UserID() int64                { return r.userID }
func (r *Rule) Weekday() time.Weekday        { return r.weekday }
func (r *Rule) Slot() schedule.Slot          { return r.slot }
func (r *Rule) EffectiveFrom() schedule.Date { return r.effectiveFrom }
func (r *Rule) EffectiveTo() *schedule.Date  { return r.effectiveTo }
func (r *Rule) IsActive() bool               { return r.active }
func (r *Rule) CreatedAt() time.Time         { return r.createdAt }
func (r *Rule) UpdatedAt() time.Time         { return r.updatedAt }
