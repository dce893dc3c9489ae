package queries

import (
	"time"

	"padel-club/internal/domain/schedule"
)

// Read models (DTO for read side). Wire names follow the club client.

type CourtView struct {
	ID          int64     `json:"idCancha"`
	Number      int       `json:"numero"`
	Category    string    `json:"tipo"`
	Description string    `json:"descripcion"`
	Active      bool      `json:"activa"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ReservationView struct {
	ID              int64     `json:"idReserva"`
	CourtID         int64     `json:"idCancha"`
	CourtNumber     int       `json:"numeroCancha"`
	UserID          int64     `json:"idUsuario"`
	UserDNI         string    `json:"dniUsuario"`
	UserName        string    `json:"nombreUsuario"`
	Date            string    `json:"fechaReserva"`
	Start           string    `json:"horaInicio"`
	End             string    `json:"horaFin"`
	Status          string    `json:"estado"`
	RecurringRuleID *int64    `json:"idReservaRecurrente,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type RuleView struct {
	ID            int64     `json:"idReservaRecurrente"`
	CourtID       int64     `json:"idCancha"`
	CourtNumber   int       `json:"numeroCancha"`
	UserID        int64     `json:"idUsuario"`
	Weekday       int       `json:"diaSemana"`
	Start         string    `json:"horaInicio"`
	End           string    `json:"horaFin"`
	EffectiveFrom string    `json:"fechaInicio"`
	EffectiveTo   *string   `json:"fechaFin,omitempty"`
	Active        bool      `json:"activa"`
	CreatedAt     time.Time `json:"createdAt"`
}

type UserView struct {
	ID        int64     `json:"idUsuario"`
	DNI       string    `json:"dni"`
	Email     string    `json:"email"`
	FirstName string    `json:"nombre"`
	LastName  string    `json:"apellido"`
	Phone     string    `json:"telefono"`
	Role      string    `json:"rol"`
	IsActive  bool      `json:"activo"`
	CreatedAt time.Time `json:"createdAt"`
}

type SlotView struct {
	Start     string `json:"horaInicio"`
	End       string `json:"horaFin"`
	State     string `json:"estado,omitempty"`
	Available bool   `json:"disponible"`
}

type AvailabilityView struct {
	Date     string     `json:"fecha"`
	CourtID  int64      `json:"idCancha"`
	Degraded bool       `json:"degradado"`
	Slots    []SlotView `json:"horarios"`
}

// ReservationFilter narrows the admin listing. Zero values mean no filter.
type ReservationFilter struct {
	From    schedule.Date
	To      schedule.Date
	CourtID int64
	UserID  int64
	Status  string
}

// KeysetPage selects rows strictly after (AfterCreatedAt, AfterID) in
// descending order. A zero AfterID means the first page.
type KeysetPage struct {
	AfterCreatedAt time.Time
	AfterID        int64
	Limit          int
}
