package readstore

import (
	"context"
	"log/slog"

	"padel-club/internal/infra"
	"padel-club/internal/infra/db"
	"padel-club/internal/pkg/pgconv"
	"padel-club/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const listRulesByUserSQL = `
SELECT rr.id_reserva_recurrente, rr.id_cancha, c.numero, rr.id_usuario, rr.dia_semana,
       rr.hora_inicio, rr.hora_fin, rr.fecha_inicio, rr.fecha_fin, rr.activa, rr.created_at
FROM reservas_recurrentes rr
JOIN canchas c ON c.id_cancha = rr.id_cancha
WHERE rr.id_usuario = $1
ORDER BY rr.activa DESC, rr.dia_semana, rr.hora_inicio`

type RuleReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewRuleReadStore(dbtx db.DBTX, logger *slog.Logger) *RuleReadStore {
	return &RuleReadStore{db: dbtx, logger: logger}
}

func (r *RuleReadStore) ListByUser(ctx context.Context, userID int64) ([]*queries.RuleView, error) {
	rows, err := r.db.Query(ctx, listRulesByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list recurring rules", err)
	}
	defer rows.Close()

	result := []*queries.RuleView{}
	for rows.Next() {
		var (
			v          queries.RuleView
			start, end pgtype.Time
			from, to   pgtype.Date
		)
		if err := rows.Scan(&v.ID, &v.CourtID, &v.CourtNumber, &v.UserID, &v.Weekday,
			&start, &end, &from, &to, &v.Active, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan recurring rule", err)
		}
		slot := pgconv.SlotFromPgtype(start, end)
		v.Start = slot.Start.String()
		v.End = slot.End.String()
		v.EffectiveFrom = pgconv.DateFromPgtype(from).String()
		if d := pgconv.DatePtrFromPgtype(to); d != nil {
			s := d.String()
			v.EffectiveTo = &s
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate recurring rules", err)
	}
	return result, nil
}
