package repository

import (
	"context"
	"log/slog"
	"time"

	"padel-club/internal/domain/court"
	"padel-club/internal/infra"
	"padel-club/internal/infra/db"
)

const (
	insertCourtSQL = `
INSERT INTO canchas (numero, tipo, descripcion, activa)
VALUES ($1, $2, $3, $4)
RETURNING id_cancha`

	updateCourtSQL = `
UPDATE canchas
SET numero = $2, tipo = $3, descripcion = $4, activa = $5, updated_at = NOW()
WHERE id_cancha = $1`

	findCourtForUpdateSQL = `
SELECT id_cancha, numero, tipo, descripcion, activa, created_at, updated_at
FROM canchas
WHERE id_cancha = $1
FOR UPDATE`
)

type CourtRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewCourtRepository(dbtx db.DBTX, logger *slog.Logger) *CourtRepository {
	return &CourtRepository{db: dbtx, logger: logger}
}

func (r *CourtRepository) Create(ctx context.Context, c *court.Court) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, insertCourtSQL,
		c.Number(), c.Category().String(), c.Description(), c.IsActive(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to create court", err)
	}
	return id, nil
}

func (r *CourtRepository) Update(ctx context.Context, c *court.Court) error {
	tag, err := r.db.Exec(ctx, updateCourtSQL,
		c.ID(), c.Number(), c.Category().String(), c.Description(), c.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to update court", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "court not found", nil)
	}
	return nil
}

func (r *CourtRepository) FindByID(ctx context.Context, id int64) (*court.Court, error) {
	var (
		courtID     int64
		number      int
		category    string
		description string
		active      bool
		createdAt   time.Time
		updatedAt   time.Time
	)
	err := r.db.QueryRow(ctx, findCourtForUpdateSQL, id).
		Scan(&courtID, &number, &category, &description, &active, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to find court", err)
	}
	return court.ReconstructCourt(courtID, number, court.Category(category), description, active, createdAt, updatedAt), nil
}
