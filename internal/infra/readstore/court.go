package readstore

import (
	"context"
	"log/slog"

	"padel-club/internal/infra"
	"padel-club/internal/infra/db"
	"padel-club/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const (
	courtViewColumns = `
SELECT id_cancha, numero, tipo, descripcion, activa, created_at, updated_at
FROM canchas`

	findCourtViewSQL = courtViewColumns + ` WHERE id_cancha = $1`

	listCourtViewsSQL = courtViewColumns + `
WHERE activa OR $1::boolean
ORDER BY numero`
)

type CourtReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewCourtReadStore(dbtx db.DBTX, logger *slog.Logger) *CourtReadStore {
	return &CourtReadStore{db: dbtx, logger: logger}
}

func (r *CourtReadStore) FindByID(ctx context.Context, id int64) (*queries.CourtView, error) {
	v, err := scanCourtView(r.db.QueryRow(ctx, findCourtViewSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "court not found", err)
	}
	return v, nil
}

func (r *CourtReadStore) List(ctx context.Context, includeInactive bool) ([]*queries.CourtView, error) {
	rows, err := r.db.Query(ctx, listCourtViewsSQL, includeInactive)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list courts", err)
	}
	defer rows.Close()

	var result []*queries.CourtView
	for rows.Next() {
		v, err := scanCourtView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan court", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate courts", err)
	}
	return result, nil
}

func scanCourtView(row pgx.Row) (*queries.CourtView, error) {
	var v queries.CourtView
	if err := row.Scan(&v.ID, &v.Number, &v.Category, &v.Description, &v.Active, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}
