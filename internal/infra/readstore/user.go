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
	userViewColumns = `
SELECT id_usuario, dni, email, nombre, apellido, COALESCE(telefono, ''), rol, activo, created_at
FROM usuarios`

	findUserViewSQL = userViewColumns + ` WHERE id_usuario = $1`

	listUserViewsSQL = userViewColumns + ` ORDER BY apellido, nombre, id_usuario`
)

type UserReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewUserReadStore(dbtx db.DBTX, logger *slog.Logger) *UserReadStore {
	return &UserReadStore{db: dbtx, logger: logger}
}

func (r *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.UserView, error) {
	v, err := scanUserView(r.db.QueryRow(ctx, findUserViewSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "user not found", err)
	}
	return v, nil
}

func (r *UserReadStore) List(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := r.db.Query(ctx, listUserViewsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list users", err)
	}
	defer rows.Close()

	result := []*queries.UserView{}
	for rows.Next() {
		v, err := scanUserView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan user", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate users", err)
	}
	return result, nil
}

func scanUserView(row pgx.Row) (*queries.UserView, error) {
	var v queries.UserView
	if err := row.Scan(&v.ID, &v.DNI, &v.Email, &v.FirstName, &v.LastName, &v.Phone, &v.Role, &v.IsActive, &v.CreatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}
