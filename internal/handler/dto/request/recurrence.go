package request

import (
	"padel-club/internal/domain/schedule"
	"padel-club/internal/usecase/commands"
)

type CreateRuleRequest struct {
	IDCancha int64 `json:"idCancha" binding:"required,gt=0"`
	// Pointer so that Sunday (0) passes the required check.
	DiaSemana   *int    `json:"diaSemana" binding:"required"`
	HoraInicio  string  `json:"horaInicio" binding:"required"`
	HoraFin     *string `json:"horaFin,omitempty"`
	FechaInicio string  `json:"fechaInicio" binding:"required"`
	FechaFin    *string `json:"fechaFin,omitempty"`
}

func (r CreateRuleRequest) ToInput() (commands.CreateRuleInput, error) {
	start, err := schedule.ParseClockTime(r.HoraInicio)
	if err != nil {
		return commands.CreateRuleInput{}, err
	}
	from, err := schedule.ParseDate(r.FechaInicio)
	if err != nil {
		return commands.CreateRuleInput{}, err
	}
	in := commands.CreateRuleInput{
		CourtID:       r.IDCancha,
		Weekday:       *r.DiaSemana,
		Start:         start,
		EffectiveFrom: from,
	}
	if r.HoraFin != nil && *r.HoraFin != "" {
		end, err := schedule.ParseClockTime(*r.HoraFin)
		if err != nil {
			return commands.CreateRuleInput{}, err
		}
		in.End = &end
	}
	if r.FechaFin != nil && *r.FechaFin != "" {
		to, err := schedule.ParseDate(*r.FechaFin)
		if err != nil {
			return commands.CreateRuleInput{}, err
		}
		in.EffectiveTo = &to
	}
	return in, nil
}
