package schedule

import (
	"time"

	"padel-club/internal/pkg/errs"
)

const DefaultSlotLength = 90 * time.Minute

// Window is the daily operating window of the club. Slots start at Opens and
// are packed back to back; a slot is offered while its start is not after
// LastStart, even if it ends later.
type Window struct {
	opens      ClockTime
	lastStart  ClockTime
	slotLength time.Duration
}

func NewWindow(opens, lastStart ClockTime, slotLength time.Duration) (Window, error) {
	if slotLength < time.Minute || slotLength%time.Minute != 0 {
		return Window{}, errs.Validation("slot length must be a positive whole number of minutes")
	}
	if lastStart.Before(opens) {
		return Window{}, errs.Validation("last slot start must not be before opening time")
	}
	return Window{opens: opens, lastStart: lastStart, slotLength: slotLength}, nil
}

// DefaultWindow is 08:00 to a last start of 22:00 with 90 minute slots.
func DefaultWindow() Window {
	return Window{
		opens:      MustClockTime("08:00"),
		lastStart:  MustClockTime("22:00"),
		slotLength: DefaultSlotLength,
	}
}

func (w Window) Opens() ClockTime          { return w.opens }
func (w Window) LastStart() ClockTime      { return w.lastStart }
func (w Window) SlotLength() time.Duration { return w.slotLength }

type Slot struct {
	Start ClockTime
	End   ClockTime
}

func (s Slot) String() string { return s.Start.String() + "-" + s.End.String() }

func (w Window) Slots() []Slot {
	step := int(w.slotLength / time.Minute)
	slots := make([]Slot, 0, (w.lastStart.Minutes()-w.opens.Minutes())/step+1)
	for m := w.opens.Minutes(); m <= w.lastStart.Minutes(); m += step {
		start := ClockTimeFromMinutes(m)
		slots = append(slots, Slot{Start: start, End: start.Add(w.slotLength)})
	}
	return slots
}

// SlotAt returns the slot that starts at start, or an InvalidSlotError naming
// the violated constraint.
func (w Window) SlotAt(start ClockTime) (Slot, error) {
	switch {
	case start.Before(w.opens):
		return Slot{}, errs.NewInvalidSlot(start.String(), "before opening time "+w.opens.String())
	case start.After(w.lastStart):
		return Slot{}, errs.NewInvalidSlot(start.String(), "after last slot start "+w.lastStart.String())
	case (start.Minutes()-w.opens.Minutes())%int(w.slotLength/time.Minute) != 0:
		return Slot{}, errs.NewInvalidSlot(start.String(), "not aligned to a slot boundary")
	}
	return Slot{Start: start, End: start.Add(w.slotLength)}, nil
}

// ParseSlot parses an "HH:MM" start and validates it against the window.
func (w Window) ParseSlot(start string) (Slot, error) {
	c, err := ParseClockTime(start)
	if err != nil {
		return Slot{}, err
	}
	return w.SlotAt(c)
}
