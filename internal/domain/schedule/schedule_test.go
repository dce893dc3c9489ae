//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"padel-club/internal/domain/schedule"
	"padel-club/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowSlots(t *testing.T) {
	t.Run("default window yields ten 90 minute slots", func(t *testing.T) {
		slots := schedule.DefaultWindow().Slots()

		starts := make([]string, len(slots))
		for i, s := range slots {
			starts[i] = s.Start.String()
		}
		assert.Equal(t, []string{"08:00", "09:30", "11:00", "12:30", "14:00", "15:30", "17:00", "18:30", "20:00", "21:30"}, starts)
		assert.Equal(t, "23:00", slots[len(slots)-1].End.String())
	})

	t.Run("slots are contiguous and never start after the last start", func(t *testing.T) {
		w := schedule.DefaultWindow()
		slots := w.Slots()
		require.NotEmpty(t, slots)
		assert.Equal(t, "08:00", slots[0].Start.String())

		for i, s := range slots {
			assert.Equal(t, 90, s.End.Minutes()-s.Start.Minutes())
			assert.False(t, s.Start.After(w.LastStart()))
			if i > 0 {
				assert.True(t, slots[i-1].End.Equal(s.Start), "slot %d must begin where %d ends", i, i-1)
			}
		}
	})

	t.Run("last start on a boundary is included", func(t *testing.T) {
		w, err := schedule.NewWindow(schedule.MustClockTime("08:00"), schedule.MustClockTime("20:00"), time.Hour)
		require.NoError(t, err)

		slots := w.Slots()
		assert.Len(t, slots, 13)
		assert.Equal(t, "20:00-21:00", slots[12].String())
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, schedule.DefaultWindow().Slots(), schedule.DefaultWindow().Slots())
	})
}

func TestNewWindow(t *testing.T) {
	_, err := schedule.NewWindow(schedule.MustClockTime("10:00"), schedule.MustClockTime("09:00"), time.Hour)
	assert.True(t, errs.Is(err, errs.ErrValidation))

	_, err = schedule.NewWindow(schedule.MustClockTime("08:00"), schedule.MustClockTime("09:00"), 30*time.Second)
	assert.True(t, errs.Is(err, errs.ErrValidation))
}

func TestWindowSlotAt(t *testing.T) {
	w := schedule.DefaultWindow()

	cases := []struct {
		name   string
		start  string
		end    string
		reason string
	}{
		{name: "first slot", start: "08:00", end: "09:30"},
		{name: "last slot ends past the window", start: "21:30", end: "23:00"},
		{name: "before opening", start: "06:30", reason: "before opening time 08:00"},
		{name: "after last start", start: "23:00", reason: "after last slot start 22:00"},
		{name: "off boundary", start: "09:00", reason: "not aligned to a slot boundary"},
		{name: "malformed", start: "9:30", reason: "expected HH:MM"},
		{name: "out of range", start: "25:00", reason: "expected HH:MM"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			slot, err := w.ParseSlot(c.start)
			if c.reason == "" {
				require.NoError(t, err)
				assert.Equal(t, c.end, slot.End.String())
				return
			}
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrInvalidSlot))

			var invalid *errs.InvalidSlotError
			require.True(t, errs.As(err, &invalid))
			assert.Equal(t, c.start, invalid.Value)
			assert.Equal(t, c.reason, invalid.Reason)
		})
	}
}

func TestClockTime(t *testing.T) {
	c := schedule.MustClockTime("21:30")
	assert.Equal(t, "23:00", c.Add(90*time.Minute).String())
	assert.Equal(t, "00:30", schedule.MustClockTime("23:00").Add(90*time.Minute).String())
	assert.Equal(t, 21*time.Hour+30*time.Minute, c.Duration())

	parsed, err := schedule.ParseClockTime("20:00:00")
	require.NoError(t, err)
	assert.Equal(t, "20:00", parsed.String())

	_, err = schedule.ParseClockTime("20:00:30")
	assert.True(t, errs.Is(err, errs.ErrInvalidSlot))
}

func TestDate(t *testing.T) {
	tuesday := schedule.MustDate("2025-06-03")
	assert.Equal(t, time.Tuesday, tuesday.Weekday())
	assert.Equal(t, "2025-06-10", tuesday.AddDays(7).String())

	wednesday := schedule.MustDate("2025-06-04")
	assert.Equal(t, "2025-06-10", wednesday.NextWeekday(time.Tuesday).String())
	assert.Equal(t, "2025-06-04", wednesday.NextWeekday(time.Wednesday).String())

	assert.Equal(t, tuesday, schedule.MinDate(tuesday, wednesday))
	assert.Equal(t, wednesday, schedule.MaxDate(tuesday, wednesday))

	loc := time.FixedZone("ART", -3*60*60)
	lateNightUTC := time.Date(2025, 6, 4, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-03", schedule.DateOf(lateNightUTC, loc).String())

	_, err := schedule.ParseDate("03/06/2025")
	assert.True(t, errs.Is(err, errs.ErrValidation))

	assert.Equal(t, "martes", schedule.WeekdayName(time.Tuesday))
	assert.Equal(t, "domingo", schedule.WeekdayName(time.Sunday))
}

func TestInstant(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)
	now := schedule.InstantOf(time.Date(2025, 6, 4, 0, 15, 42, 0, time.UTC), loc)
	assert.Equal(t, "2025-06-03", now.Date.String())
	assert.Equal(t, "21:15", now.Time.String())

	tuesday := schedule.MustDate("2025-06-03")
	assert.True(t, now.Reached(tuesday, schedule.MustClockTime("20:00")))
	assert.True(t, now.Reached(tuesday, schedule.MustClockTime("21:15")))
	assert.False(t, now.Reached(tuesday, schedule.MustClockTime("21:30")))
	assert.True(t, now.Reached(tuesday.AddDays(-1), schedule.MustClockTime("23:00")))
	assert.False(t, now.Reached(tuesday.AddDays(1), schedule.MustClockTime("08:00")))
}
