package schedule

import (
	"time"

	"padel-club/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

// Date is a calendar day without a time zone.
type Date struct {
	t time.Time // midnight UTC
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.Validation("expected date as YYYY-MM-DD")
	}
	return Date{t: t}, nil
}

func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf returns the calendar day of t as seen in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	y, m, d := t.In(loc).Date()
	return NewDate(y, m, d)
}

// Instant is a wall clock reading in the club's time zone, to the minute.
type Instant struct {
	Date Date
	Time ClockTime
}

func InstantOf(t time.Time, loc *time.Location) Instant {
	local := t.In(loc)
	return Instant{Date: DateOf(local, loc), Time: ClockTimeFromMinutes(local.Hour()*60 + local.Minute())}
}

// Reached reports whether the start of (d, c) is at or before i.
func (i Instant) Reached(d Date, c ClockTime) bool {
	if d.Before(i.Date) {
		return true
	}
	return d.Equal(i.Date) && !i.Time.Before(c)
}

func (d Date) IsZero() bool             { return d.t.IsZero() }
func (d Date) Weekday() time.Weekday    { return d.t.Weekday() }
func (d Date) AddDays(n int) Date       { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) Before(o Date) bool       { return d.t.Before(o.t) }
func (d Date) After(o Date) bool        { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool        { return d.t.Equal(o.t) }
func (d Date) String() string           { return d.t.Format(DateLayout) }
func (d Date) Time() time.Time          { return d.t }
func (d Date) At(c ClockTime) time.Time { return d.t.Add(time.Duration(c.Minutes()) * time.Minute) }

// NextWeekday returns the first date on or after d that falls on wd.
func (d Date) NextWeekday(wd time.Weekday) Date {
	offset := (int(wd) - int(d.Weekday()) + 7) % 7
	return d.AddDays(offset)
}

func MaxDate(a, b Date) Date {
	if a.After(b) {
		return a
	}
	return b
}

func MinDate(a, b Date) Date {
	if a.Before(b) {
		return a
	}
	return b
}

func (d Date) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var weekdayNames = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

// WeekdayName is the Spanish day name shown to club members.
func WeekdayName(wd time.Weekday) string {
	if wd < time.Sunday || wd > time.Saturday {
		return ""
	}
	return weekdayNames[wd]
}
