package repository

import (
	"context"
	"log/slog"
	"time"

	"padel-club/internal/domain/reservation"
	"padel-club/internal/domain/schedule"
	"padel-club/internal/infra"
	"padel-club/internal/infra/db"
	"padel-club/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	// two-key form: court id plus a hash of date and start. A hash collision
	// only makes unrelated writers wait.
	lockSlotSQL = `SELECT pg_advisory_xact_lock($1::int, hashtext($2))`

	confirmedOwnerSQL = `
SELECT id_usuario FROM reservas
WHERE id_cancha = $1 AND fecha = $2 AND hora_inicio = $3 AND estado = 'confirmada'
LIMIT 1`

	existsForRuleSQL = `
SELECT EXISTS (
    SELECT 1 FROM reservas
    WHERE id_reserva_recurrente = $1 AND fecha = $2
)`

	insertReservationSQL = `
INSERT INTO reservas (id_cancha, id_usuario, fecha, hora_inicio, hora_fin, estado, id_reserva_recurrente)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id_reserva`

	findReservationForUpdateSQL = `
SELECT id_reserva, id_cancha, id_usuario, fecha, hora_inicio, hora_fin, estado,
       id_reserva_recurrente, created_at, updated_at
FROM reservas
WHERE id_reserva = $1
FOR UPDATE`

	updateReservationStatusSQL = `
UPDATE reservas SET estado = $2, updated_at = NOW() WHERE id_reserva = $1`
)

type ReservationRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewReservationRepository(dbtx db.DBTX, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{db: dbtx, logger: logger}
}

func (r *ReservationRepository) LockSlot(ctx context.Context, courtID int64, date schedule.Date, start schedule.ClockTime) error {
	key := date.String() + " " + start.String()
	if _, err := r.db.Exec(ctx, lockSlotSQL, courtID, key); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to lock slot", err)
	}
	return nil
}

func (r *ReservationRepository) ConfirmedOwner(ctx context.Context, courtID int64, date schedule.Date, start schedule.ClockTime) (int64, bool, error) {
	var userID int64
	err := r.db.QueryRow(ctx, confirmedOwnerSQL,
		courtID, pgconv.DateToPgtype(date), pgconv.ClockTimeToPgtype(start),
	).Scan(&userID)
	if pgconv.IsNoRows(err) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to check slot occupancy", err)
	}
	return userID, true, nil
}

func (r *ReservationRepository) ExistsForRule(ctx context.Context, ruleID int64, date schedule.Date) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, existsForRuleSQL, ruleID, pgconv.DateToPgtype(date)).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to check materialized occurrence", err)
	}
	return exists, nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, insertReservationSQL,
		res.CourtID(),
		res.UserID(),
		pgconv.DateToPgtype(res.Date()),
		pgconv.ClockTimeToPgtype(res.Start()),
		pgconv.ClockTimeToPgtype(res.End()),
		res.Status().String(),
		pgconv.Int64PtrToPgtype(res.RecurringRuleID()),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	var (
		resID, courtID, userID int64
		date                   pgtype.Date
		start, end             pgtype.Time
		status                 string
		ruleID                 pgtype.Int8
		createdAt, updatedAt   time.Time
	)
	err := r.db.QueryRow(ctx, findReservationForUpdateSQL, id).
		Scan(&resID, &courtID, &userID, &date, &start, &end, &status, &ruleID, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to find reservation", err)
	}
	return reservation.ReconstructReservation(
		resID, courtID, userID,
		pgconv.DateFromPgtype(date),
		pgconv.SlotFromPgtype(start, end),
		reservation.Status(status),
		pgconv.Int64PtrFromPgtype(ruleID),
		createdAt, updatedAt,
	), nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, status reservation.Status) error {
	tag, err := r.db.Exec(ctx, updateReservationStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "reservation not found", nil)
	}
	return nil
}
