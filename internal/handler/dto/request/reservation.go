package request

import (
	"padel-club/internal/domain/schedule"
	"padel-club/internal/pkg/errs"
	"padel-club/internal/usecase/commands"
	"padel-club/internal/usecase/queries"
)

type CreateReservationRequest struct {
	IDCancha     int64   `json:"idCancha" binding:"required,gt=0"`
	FechaReserva string  `json:"fechaReserva" binding:"required"`
	HoraInicio   string  `json:"horaInicio" binding:"required"`
	HoraFin      *string `json:"horaFin,omitempty"`
}

func (r CreateReservationRequest) ToInput() (commands.CreateReservationInput, error) {
	date, err := schedule.ParseDate(r.FechaReserva)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	start, err := schedule.ParseClockTime(r.HoraInicio)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	in := commands.CreateReservationInput{CourtID: r.IDCancha, Date: date, Start: start}
	if r.HoraFin != nil && *r.HoraFin != "" {
		end, err := schedule.ParseClockTime(*r.HoraFin)
		if err != nil {
			return commands.CreateReservationInput{}, err
		}
		in.End = &end
	}
	return in, nil
}

// ReservationFilterQuery binds the admin listing and export query string.
type ReservationFilterQuery struct {
	Desde     string `form:"desde"`
	Hasta     string `form:"hasta"`
	IDCancha  int64  `form:"idCancha"`
	IDUsuario int64  `form:"idUsuario"`
	Estado    string `form:"estado"`
}

func (q ReservationFilterQuery) ToFilter() (queries.ReservationFilter, error) {
	f := queries.ReservationFilter{CourtID: q.IDCancha, UserID: q.IDUsuario, Status: q.Estado}
	var err error
	if q.Desde != "" {
		if f.From, err = schedule.ParseDate(q.Desde); err != nil {
			return f, errs.Wrap(err, "desde")
		}
	}
	if q.Hasta != "" {
		if f.To, err = schedule.ParseDate(q.Hasta); err != nil {
			return f, errs.Wrap(err, "hasta")
		}
	}
	return f, nil
}

type PageQuery struct {
	Limit int    `form:"limit"`
	After string `form:"after"`
}

func (q PageQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}
