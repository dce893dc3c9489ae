//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"padel-club/internal/pkg/password"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the clear-text password of every fixture user.
const DefaultPassword = "password123"

var (
	hashOnce    sync.Once
	defaultHash string
)

func passwordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.HashWithCost(DefaultPassword, bcrypt.MinCost)
		if err == nil {
			defaultHash = h
		}
	})
	require.NotEmpty(t, defaultHash, "failed to hash fixture password")
	return defaultHash
}

// CreateTestUser inserts an active user, or returns the id of an existing one
// with the same DNI.
func CreateTestUser(t *testing.T, db DBLike, dni, role string) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO usuarios (dni, email, nombre, apellido, password_hash, rol, activo)
		VALUES ($1, $2, 'Test', 'User', $3, $4, true)
		ON CONFLICT (dni) DO UPDATE SET dni = EXCLUDED.dni
		RETURNING id_usuario`,
		dni, dni+"@example.com", passwordHash(t), role).Scan(&id)
	require.NoError(t, err)
	return id
}

func SetUserActive(t *testing.T, db DBLike, id int64, active bool) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE usuarios SET activo = $2 WHERE id_usuario = $1", id, active)
	require.NoError(t, err)
}

func CreateTestCourt(t *testing.T, db DBLike, number int, active bool) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO canchas (numero, tipo, descripcion, activa)
		VALUES ($1, 'indoor', '', $2)
		ON CONFLICT (numero) DO UPDATE SET activa = EXCLUDED.activa
		RETURNING id_cancha`, number, active).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountConfirmed(t *testing.T, db DBLike, courtID int64, date, start string) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), `
		SELECT COUNT(*) FROM reservas
		WHERE id_cancha = $1 AND fecha = $2::date AND hora_inicio = $3::time AND estado = 'confirmada'`,
		courtID, date, start).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts the club's two default courts
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO canchas (numero, tipo, descripcion) VALUES
		    (1, 'indoor', 'Cancha techada'),
		    (2, 'outdoor', 'Cancha descubierta')
		ON CONFLICT (numero) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
