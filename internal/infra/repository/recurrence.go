package repository

import (
	"context"
	"log/slog"
	"time"

	"padel-club/internal/domain/recurrence"
	"padel-club/internal/infra"
	"padel-club/internal/infra/db"
	"padel-club/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertRuleSQL = `
INSERT INTO reservas_recurrentes (id_cancha, id_usuario, dia_semana, hora_inicio, hora_fin, fecha_inicio, fecha_fin, activa)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id_reserva_recurrente`

	ruleColumns = `
SELECT id_reserva_recurrente, id_cancha, id_usuario, dia_semana, hora_inicio, hora_fin,
       fecha_inicio, fecha_fin, activa, created_at, updated_at
FROM reservas_recurrentes`

	findRuleForUpdateSQL = ruleColumns + `
WHERE id_reserva_recurrente = $1
FOR UPDATE`

	listActiveRulesSQL = ruleColumns + `
WHERE activa
ORDER BY id_reserva_recurrente`

	deactivateRuleSQL = `
UPDATE reservas_recurrentes SET activa = FALSE, updated_at = NOW()
WHERE id_reserva_recurrente = $1`
)

type RecurringRuleRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewRecurringRuleRepository(dbtx db.DBTX, logger *slog.Logger) *RecurringRuleRepository {
	return &RecurringRuleRepository{db: dbtx, logger: logger}
}

func (r *RecurringRuleRepository) Create(ctx context.Context, rule *recurrence.Rule) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, insertRuleSQL,
		rule.CourtID(),
		rule.UserID(),
		int16(rule.Weekday()),
		pgconv.ClockTimeToPgtype(rule.Slot().Start),
		pgconv.ClockTimeToPgtype(rule.Slot().End),
		pgconv.DateToPgtype(rule.EffectiveFrom()),
		pgconv.DatePtrToPgtype(rule.EffectiveTo()),
		rule.IsActive(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to create recurring reservation", err)
	}
	return id, nil
}

func (r *RecurringRuleRepository) FindByID(ctx context.Context, id int64) (*recurrence.Rule, error) {
	rule, err := scanRule(r.db.QueryRow(ctx, findRuleForUpdateSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to find recurring reservation", err)
	}
	return rule, nil
}

func (r *RecurringRuleRepository) Deactivate(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deactivateRuleSQL, id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to cancel recurring reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "recurring reservation not found", nil)
	}
	return nil
}

func (r *RecurringRuleRepository) ListActive(ctx context.Context) ([]*recurrence.Rule, error) {
	rows, err := r.db.Query(ctx, listActiveRulesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list active recurring reservations", err)
	}
	defer rows.Close()

	var rules []*recurrence.Rule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan recurring reservation", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate recurring reservations", err)
	}
	return rules, nil
}

func scanRule(row pgx.Row) (*recurrence.Rule, error) {
	var (
		id, courtID, userID  int64
		weekday              int16
		start, end           pgtype.Time
		from, to             pgtype.Date
		active               bool
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &courtID, &userID, &weekday, &start, &end, &from, &to, &active, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return recurrence.ReconstructRule(
		id, courtID, userID,
		time.Weekday(weekday),
		pgconv.SlotFromPgtype(start, end),
		pgconv.DateFromPgtype(from),
		pgconv.DatePtrFromPgtype(to),
		active,
		createdAt, updatedAt,
	), nil
}
