package repository

import (
	"context"
	"log/slog"
	"time"

	"padel-club/internal/domain/user"
	"padel-club/internal/infra"
	"padel-club/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

const (
	insertUserSQL = `
INSERT INTO usuarios (dni, email, nombre, apellido, telefono, password_hash, rol, activo)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id_usuario`

	userColumns = `
SELECT id_usuario, dni, email, nombre, apellido, telefono, password_hash, rol, activo, created_at, updated_at
FROM usuarios`

	findUserByIDSQL  = userColumns + ` WHERE id_usuario = $1`
	findUserByDNISQL = userColumns + ` WHERE dni = $1`

	updateUserAccessSQL = `
UPDATE usuarios SET rol = $2, activo = $3, updated_at = NOW()
WHERE id_usuario = $1`

	updateUserLastLoginSQL = `
UPDATE usuarios SET last_login_at = NOW() WHERE id_usuario = $1`
)

type UserRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewUserRepository(dbtx db.DBTX, logger *slog.Logger) *UserRepository {
	return &UserRepository{db: dbtx, logger: logger}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	var id int64
	p := u.Profile()
	err := r.db.QueryRow(ctx, insertUserSQL,
		u.DNI().Value(), u.Email().Value(), p.FirstName, p.LastName, p.Phone,
		u.PasswordHash(), u.Role().String(), u.IsActive(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, findUserByIDSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to find user by ID", err)
	}
	return u, nil
}

func (r *UserRepository) FindByDNI(ctx context.Context, dni user.DNI) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, findUserByDNISQL, dni.Value()))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to find user by dni", err)
	}
	return u, nil
}

func (r *UserRepository) UpdateAccess(ctx context.Context, u *user.User) error {
	tag, err := r.db.Exec(ctx, updateUserAccessSQL, u.ID(), u.Role().String(), u.IsActive())
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update user access", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", nil)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, updateUserLastLoginSQL, id); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update user last login", err)
	}
	return nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		id                                  int64
		dni, email, first, last, phone, pwd string
		role                                string
		active                              bool
		createdAt, updatedAt                time.Time
	)
	if err := row.Scan(&id, &dni, &email, &first, &last, &phone, &pwd, &role, &active, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return user.ReconstructUser(
		id,
		user.ReconstructDNI(dni),
		user.ReconstructEmail(email),
		user.Profile{FirstName: first, LastName: last, Phone: phone},
		pwd,
		user.Role(role),
		active,
		createdAt, updatedAt,
	), nil
}
