package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"padel-club/internal/domain/schedule"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

const minutesPerDay = 24 * 60

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	return &pt.Time
}

func Int64PtrFromPgtype(pi pgtype.Int8) *int64 {
	if !pi.Valid {
		return nil
	}
	return &pi.Int64
}

func Int64PtrToPgtype(i *int64) pgtype.Int8 {
	if i == nil {
		return pgtype.Int8{Valid: false}
	}
	return pgtype.Int8{Int64: *i, Valid: true}
}

func DateToPgtype(d schedule.Date) pgtype.Date {
	return pgtype.Date{Time: d.Time(), Valid: !d.IsZero()}
}

func DatePtrToPgtype(d *schedule.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{Valid: false}
	}
	return DateToPgtype(*d)
}

func DateFromPgtype(pd pgtype.Date) schedule.Date {
	if !pd.Valid {
		return schedule.Date{}
	}
	return schedule.NewDate(pd.Time.Year(), pd.Time.Month(), pd.Time.Day())
}

func DatePtrFromPgtype(pd pgtype.Date) *schedule.Date {
	if !pd.Valid {
		return nil
	}
	d := DateFromPgtype(pd)
	return &d
}

// ClockTimeToPgtype wraps at midnight since TIME cannot exceed 24:00.
func ClockTimeToPgtype(c schedule.ClockTime) pgtype.Time {
	m := c.Minutes() % minutesPerDay
	return pgtype.Time{Microseconds: int64(m) * int64(time.Minute/time.Microsecond), Valid: true}
}

func ClockTimeFromPgtype(pt pgtype.Time) schedule.ClockTime {
	return schedule.ClockTimeFromMinutes(int(pt.Microseconds / int64(time.Minute/time.Microsecond)))
}

// SlotFromPgtype rebuilds a slot whose end may have been wrapped past midnight.
func SlotFromPgtype(start, end pgtype.Time) schedule.Slot {
	s := ClockTimeFromPgtype(start)
	e := ClockTimeFromPgtype(end)
	if e.Minutes() <= s.Minutes() {
		e = schedule.ClockTimeFromMinutes(e.Minutes() + minutesPerDay)
	}
	return schedule.Slot{Start: s, End: e}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

func IsUniqueViolation(err error) bool {
	return pgCode(err) == pgErrCodeUniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	return pgCode(err) == pgErrCodeForeignKeyViolation
}

// ConstraintName returns the violated constraint or index, if any.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
