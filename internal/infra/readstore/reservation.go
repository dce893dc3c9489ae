package readstore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"padel-club/internal/domain/schedule"
	"padel-club/internal/infra"
	"padel-club/internal/infra/db"
	"padel-club/internal/pkg/pgconv"
	"padel-club/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	reservationViewColumns = `
SELECT r.id_reserva, r.id_cancha, c.numero, r.id_usuario, u.dni, u.nombre || ' ' || u.apellido,
       r.fecha, r.hora_inicio, r.hora_fin, r.estado, r.id_reserva_recurrente, r.created_at
FROM reservas r
JOIN canchas c ON c.id_cancha = r.id_cancha
JOIN usuarios u ON u.id_usuario = r.id_usuario`

	findReservationViewSQL = reservationViewColumns + ` WHERE r.id_reserva = $1`

	listByCourtAndDateSQL = reservationViewColumns + `
WHERE r.id_cancha = $1 AND r.fecha = $2
ORDER BY r.hora_inicio, r.id_reserva`

	listByUserFirstPageSQL = reservationViewColumns + `
WHERE r.id_usuario = $1
ORDER BY r.created_at DESC, r.id_reserva DESC
LIMIT $2`

	listByUserAllSQL = reservationViewColumns + `
WHERE r.id_usuario = $1
ORDER BY r.created_at DESC, r.id_reserva DESC`

	listByUserKeysetSQL = reservationViewColumns + `
WHERE r.id_usuario = $1 AND (r.created_at, r.id_reserva) < ($2, $3)
ORDER BY r.created_at DESC, r.id_reserva DESC
LIMIT $4`

	confirmedStartsSQL = `
SELECT hora_inicio FROM reservas
WHERE id_cancha = $1 AND fecha = $2 AND estado = 'confirmada'
ORDER BY hora_inicio`
)

type ReservationReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewReservationReadStore(dbtx db.DBTX, logger *slog.Logger) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx, logger: logger}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	v, err := scanReservationView(r.db.QueryRow(ctx, findReservationViewSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "reservation not found", err)
	}
	return v, nil
}

func (r *ReservationReadStore) ListByCourtAndDate(ctx context.Context, courtID int64, date schedule.Date) ([]*queries.ReservationView, error) {
	return r.list(ctx, "failed to list reservations by court and date", listByCourtAndDateSQL, courtID, pgconv.DateToPgtype(date))
}

func (r *ReservationReadStore) ListByUser(ctx context.Context, userID int64, page queries.KeysetPage) ([]*queries.ReservationView, error) {
	if page.AfterID == 0 && page.Limit <= 0 {
		return r.list(ctx, "failed to list reservations", listByUserAllSQL, userID)
	}
	if page.AfterID == 0 {
		return r.list(ctx, "failed to list reservations first page", listByUserFirstPageSQL, userID, page.Limit)
	}
	return r.list(ctx, "failed to list reservations page", listByUserKeysetSQL,
		userID, page.AfterCreatedAt, page.AfterID, page.Limit)
}

// List builds the admin listing from the filter's non-zero fields.
func (r *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if !filter.From.IsZero() {
		add("r.fecha >= $%d", pgconv.DateToPgtype(filter.From))
	}
	if !filter.To.IsZero() {
		add("r.fecha <= $%d", pgconv.DateToPgtype(filter.To))
	}
	if filter.CourtID != 0 {
		add("r.id_cancha = $%d", filter.CourtID)
	}
	if filter.UserID != 0 {
		add("r.id_usuario = $%d", filter.UserID)
	}
	if filter.Status != "" {
		add("r.estado = $%d", filter.Status)
	}

	query := reservationViewColumns
	if len(conds) > 0 {
		query += "\nWHERE " + strings.Join(conds, " AND ")
	}
	query += "\nORDER BY r.fecha, r.hora_inicio, r.id_cancha"

	return r.list(ctx, "failed to list reservations", query, args...)
}

func (r *ReservationReadStore) ConfirmedStarts(ctx context.Context, courtID int64, date schedule.Date) ([]schedule.ClockTime, error) {
	rows, err := r.db.Query(ctx, confirmedStartsSQL, courtID, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read confirmed starts", err)
	}
	defer rows.Close()

	starts := []schedule.ClockTime{}
	for rows.Next() {
		var t pgtype.Time
		if err := rows.Scan(&t); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan confirmed start", err)
		}
		starts = append(starts, pgconv.ClockTimeFromPgtype(t))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate confirmed starts", err)
	}
	return starts, nil
}

func (r *ReservationReadStore) list(ctx context.Context, msg, query string, args ...any) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, msg, err)
	}
	defer rows.Close()

	result := []*queries.ReservationView{}
	for rows.Next() {
		v, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, msg, err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, msg, err)
	}
	return result, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var (
		v          queries.ReservationView
		date       pgtype.Date
		start, end pgtype.Time
		ruleID     pgtype.Int8
	)
	if err := row.Scan(
		&v.ID, &v.CourtID, &v.CourtNumber, &v.UserID, &v.UserDNI, &v.UserName,
		&date, &start, &end, &v.Status, &ruleID, &v.CreatedAt,
	); err != nil {
		return nil, err
	}
	slot := pgconv.SlotFromPgtype(start, end)
	v.Date = pgconv.DateFromPgtype(date).String()
	v.Start = slot.Start.String()
	v.End = slot.End.String()
	v.RecurringRuleID = pgconv.Int64PtrFromPgtype(ruleID)
	return &v, nil
}
