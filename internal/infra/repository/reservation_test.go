//go:build unit

package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"padel-club/internal/domain/reservation"
	"padel-club/internal/domain/schedule"
	"padel-club/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

// scanRow fills the first destination with value, or returns err.
type scanRow struct {
	value any
	err   error
}

func (r scanRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	switch d := dest[0].(type) {
	case *int64:
		*d = r.value.(int64)
	case *bool:
		*d = r.value.(bool)
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var (
	tuesday = schedule.MustDate("2025-06-03")
	eightPM = schedule.MustClockTime("20:00")
	anyCtx  = mock.Anything
)

func TestLockSlot(t *testing.T) {
	dbtx := new(MockDBTX)
	dbtx.On("Exec", anyCtx, lockSlotSQL, []any{int64(3), "2025-06-03 20:00"}).
		Return(pgconn.NewCommandTag("SELECT 1"), nil)

	repo := NewReservationRepository(dbtx, discardLogger())
	require.NoError(t, repo.LockSlot(context.Background(), 3, tuesday, eightPM))
	dbtx.AssertExpectations(t)
}

func TestConfirmedOwner(t *testing.T) {
	tests := []struct {
		name      string
		row       scanRow
		wantOwner int64
		wantFound bool
		wantError bool
	}{
		{name: "occupied", row: scanRow{value: int64(7)}, wantOwner: 7, wantFound: true},
		{name: "free", row: scanRow{err: pgx.ErrNoRows}},
		{name: "db failure", row: scanRow{err: io.ErrUnexpectedEOF}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbtx := new(MockDBTX)
			dbtx.On("QueryRow", anyCtx, confirmedOwnerSQL, mock.Anything).Return(tt.row)

			repo := NewReservationRepository(dbtx, discardLogger())
			owner, found, err := repo.ConfirmedOwner(context.Background(), 3, tuesday, eightPM)
			if tt.wantError {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantOwner, owner)
		})
	}
}

func TestCreateReservation(t *testing.T) {
	res, err := reservation.NewReservation(schedule.DefaultWindow(), schedule.Instant{Date: tuesday}, reservation.Request{
		CourtID: 3, UserID: 7, Date: tuesday, Start: eightPM,
	})
	require.NoError(t, err)

	t.Run("returns the new id", func(t *testing.T) {
		dbtx := new(MockDBTX)
		dbtx.On("QueryRow", anyCtx, insertReservationSQL, mock.Anything).Return(scanRow{value: int64(42)})

		id, err := NewReservationRepository(dbtx, discardLogger()).Create(context.Background(), res)
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("unique violation is a duplicate key", func(t *testing.T) {
		dbtx := new(MockDBTX)
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: infra.IndexSlotConfirmed}
		dbtx.On("QueryRow", anyCtx, insertReservationSQL, mock.Anything).Return(scanRow{err: pgErr})

		_, err := NewReservationRepository(dbtx, discardLogger()).Create(context.Background(), res)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.True(t, infra.IsDuplicateOn(err, infra.IndexSlotConfirmed))
		assert.False(t, infra.IsDuplicateOn(err, infra.IndexRuleDate))
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("missing row is not found", func(t *testing.T) {
		dbtx := new(MockDBTX)
		dbtx.On("Exec", anyCtx, updateReservationStatusSQL, []any{int64(9), "cancelada"}).
			Return(pgconn.NewCommandTag("UPDATE 0"), nil)

		err := NewReservationRepository(dbtx, discardLogger()).UpdateStatus(context.Background(), 9, reservation.StatusCanceled)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("updated", func(t *testing.T) {
		dbtx := new(MockDBTX)
		dbtx.On("Exec", anyCtx, updateReservationStatusSQL, []any{int64(9), "cancelada"}).
			Return(pgconn.NewCommandTag("UPDATE 1"), nil)

		err := NewReservationRepository(dbtx, discardLogger()).UpdateStatus(context.Background(), 9, reservation.StatusCanceled)
		require.NoError(t, err)
	})
}

func TestUpdateLastLogin(t *testing.T) {
	dbtx := new(MockDBTX)
	dbtx.On("Exec", anyCtx, updateUserLastLoginSQL, []any{int64(7)}).
		Return(pgconn.CommandTag{}, io.ErrUnexpectedEOF)

	err := NewUserRepository(dbtx, discardLogger()).UpdateLastLogin(context.Background(), 7)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
