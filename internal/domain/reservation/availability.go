package reservation

import "padel-club/internal/domain/schedule"

type SlotState string

const (
	SlotFree     SlotState = "libre"
	SlotOccupied SlotState = "ocupado"
	SlotUnknown  SlotState = "desconocido"
)

type SlotAvailability struct {
	Slot  schedule.Slot
	State SlotState
}

func (s SlotAvailability) Available() bool { return s.State == SlotFree }

// Booked is the minimum the resolver needs from an existing booking.
type Booked struct {
	Start  schedule.ClockTime
	Status Status
}

// ResolveAvailability marks a slot occupied iff a confirmed booking starts at
// the same time. Bookings are only read.
func ResolveAvailability(w schedule.Window, existing []Booked) []SlotAvailability {
	taken := make(map[int]struct{}, len(existing))
	for _, b := range existing {
		if b.Status.BlocksSlot() {
			taken[b.Start.Minutes()] = struct{}{}
		}
	}

	slots := w.Slots()
	out := make([]SlotAvailability, len(slots))
	for i, s := range slots {
		state := SlotFree
		if _, ok := taken[s.Start.Minutes()]; ok {
			state = SlotOccupied
		}
		out[i] = SlotAvailability{Slot: s, State: state}
	}
	return out
}

// UnverifiedAvailability is returned when bookings could not be read. Every
// slot is reported unknown so callers never see a falsely free grid.
func UnverifiedAvailability(w schedule.Window) []SlotAvailability {
	slots := w.Slots()
	out := make([]SlotAvailability, len(slots))
	for i, s := range slots {
		out[i] = SlotAvailability{Slot: s, State: SlotUnknown}
	}
	return out
}

func BookedFrom(rs []*Reservation) []Booked {
	out := make([]Booked, len(rs))
	for i, r := range rs {
		out[i] = Booked{Start: r.Start(), Status: r.Status()}
	}
	return out
}
