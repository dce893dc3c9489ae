package schedule

import (
	"fmt"
	"time"

	"padel-club/internal/pkg/errs"
)

const minutesPerDay = 24 * 60

// ClockTime is a time of day in minutes since midnight. Values past 24:00 are
// allowed so that a slot end keeps absolute arithmetic (21:30 + 90m = 23:00,
// 23:00 + 90m = 24:30).
type ClockTime struct {
	minutes int
}

func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, errs.NewInvalidSlot(fmt.Sprintf("%02d:%02d", hour, minute), "hour or minute out of range")
	}
	return ClockTime{minutes: hour*60 + minute}, nil
}

// ParseClockTime accepts zero-padded 24-hour "HH:MM"; "HH:MM:SS" with zero
// seconds is accepted too because Postgres TIME columns render that way.
func ParseClockTime(s string) (ClockTime, error) {
	layout := "15:04"
	if len(s) == len("15:04:05") {
		layout = "15:04:05"
	}
	t, err := time.Parse(layout, s)
	if err != nil || len(s) != len(layout) || t.Second() != 0 {
		return ClockTime{}, errs.NewInvalidSlot(s, "expected HH:MM")
	}
	return ClockTime{minutes: t.Hour()*60 + t.Minute()}, nil
}

func MustClockTime(s string) ClockTime {
	c, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return c
}

func ClockTimeFromMinutes(m int) ClockTime { return ClockTime{minutes: m} }

func (c ClockTime) Minutes() int { return c.minutes }

func (c ClockTime) Add(d time.Duration) ClockTime {
	return ClockTime{minutes: c.minutes + int(d/time.Minute)}
}

func (c ClockTime) Before(o ClockTime) bool { return c.minutes < o.minutes }
func (c ClockTime) After(o ClockTime) bool  { return c.minutes > o.minutes }
func (c ClockTime) Equal(o ClockTime) bool  { return c.minutes == o.minutes }

// String renders "HH:MM" on a 24h clock; ends past midnight wrap.
func (c ClockTime) String() string {
	m := c.minutes % minutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Duration is the offset from midnight, for storage in TIME columns.
func (c ClockTime) Duration() time.Duration {
	return time.Duration(c.minutes%minutesPerDay) * time.Minute
}

func (c ClockTime) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *ClockTime) UnmarshalText(b []byte) error {
	parsed, err := ParseClockTime(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
