//go:build unit || e2e

package builder

import (
	"time"

	reqdto "padel-club/internal/handler/dto/request"
	"padel-club/internal/usecase/queries"
)

type ReservationBuilder struct {
	CourtID int64
	Date    string
	Start   string
	End     string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		CourtID: 1,
		Date:    "2025-06-05",
		Start:   "20:00",
	}
}

func (r *ReservationBuilder) WithCourt(id int64) *ReservationBuilder {
	r.CourtID = id
	return r
}

func (r *ReservationBuilder) On(date string) *ReservationBuilder {
	r.Date = date
	return r
}

func (r *ReservationBuilder) At(start string) *ReservationBuilder {
	r.Start = start
	return r
}

func (r *ReservationBuilder) Until(end string) *ReservationBuilder {
	r.End = end
	return r
}

func (r *ReservationBuilder) BuildDTO() reqdto.CreateReservationRequest {
	req := reqdto.CreateReservationRequest{IDCancha: r.CourtID, FechaReserva: r.Date, HoraInicio: r.Start}
	if r.End != "" {
		end := r.End
		req.HoraFin = &end
	}
	return req
}

// BuildView builds the read model a query would return for this booking.
func (r *ReservationBuilder) BuildView(id, userID int64) *queries.ReservationView {
	end := r.End
	if end == "" {
		end = "21:30"
	}
	return &queries.ReservationView{
		ID:        id,
		CourtID:   r.CourtID,
		UserID:    userID,
		Date:      r.Date,
		Start:     r.Start,
		End:       end,
		Status:    "confirmada",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

type RuleBuilder struct {
	req reqdto.CreateRuleRequest
}

func NewRuleBuilder() *RuleBuilder {
	weekday := 2
	return &RuleBuilder{req: reqdto.CreateRuleRequest{
		IDCancha:    1,
		DiaSemana:   &weekday,
		HoraInicio:  "20:00",
		FechaInicio: "2025-06-03",
	}}
}

func (b *RuleBuilder) With(mutate func(*reqdto.CreateRuleRequest)) *RuleBuilder {
	mutate(&b.req)
	return b
}

func (b *RuleBuilder) BuildDTO() reqdto.CreateRuleRequest {
	return b.req
}
