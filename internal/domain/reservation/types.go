package reservation

type Status string

// Only StatusConfirmed occupies a slot. StatusPending exists in the stored
// state machine but does not block availability.
const (
	StatusPending   Status = "pendiente"
	StatusConfirmed Status = "confirmada"
	StatusCanceled  Status = "cancelada"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled:
		return true
	default:
		return false
	}
}

func (s Status) BlocksSlot() bool {
	return s == StatusConfirmed
}
