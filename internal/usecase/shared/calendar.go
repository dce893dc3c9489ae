package shared

import (
	"fmt"
	"time"

	"padel-club/internal/domain/schedule"
	"padel-club/internal/pkg/clock"
	"padel-club/internal/pkg/config"
)

// Calendar ties the operating window to the club's time zone and the
// recurrence horizon.
type Calendar struct {
	Window       schedule.Window
	Location     *time.Location
	HorizonWeeks int
	Clock        clock.Clock
}

func NewCalendar(cfg config.ScheduleConfig, clk clock.Clock) (*Calendar, error) {
	opens, err := schedule.ParseClockTime(cfg.OpensAt)
	if err != nil {
		return nil, fmt.Errorf("invalid opening time: %w", err)
	}
	last, err := schedule.ParseClockTime(cfg.LastStart)
	if err != nil {
		return nil, fmt.Errorf("invalid last start: %w", err)
	}
	w, err := schedule.NewWindow(opens, last, time.Duration(cfg.SlotMinutes)*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule window: %w", err)
	}
	weeks := cfg.HorizonWeeks
	if weeks <= 0 {
		weeks = 4
	}
	return &Calendar{Window: w, Location: cfg.Location(), HorizonWeeks: weeks, Clock: clk}, nil
}

// Now is the current date and minute in the club time zone.
func (c *Calendar) Now() schedule.Instant {
	return schedule.InstantOf(c.Clock.Now(), c.Location)
}

// HorizonEnd is the first date past the materialization horizon.
func (c *Calendar) HorizonEnd(today schedule.Date) schedule.Date {
	return today.AddDays(c.HorizonWeeks * 7)
}
