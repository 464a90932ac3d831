package service

import (
	"time"

	"fitness-community-backend/internal/database/models"
)

// Interval symbols recognized by the date-window resolver. Anything else
// resolves to "no lower bound" (all-time).
const (
	IntervalYear  = "year"
	IntervalMonth = "month"
	IntervalWeek  = "week"
)

// WindowStart converts a symbolic interval and a week-start preference into
// the inclusive start date of the statistics window, in the host's local
// time, truncated to midnight. A nil result means no lower bound.
//
// "year" starts at January 1 of the current year, "month" at the 1st of the
// current month, and "week" at the most recent occurrence of the configured
// week-start weekday, counting today as a match.
func WindowStart(interval string, weekStart models.WeekStart) *time.Time {
	now := time.Now()
	return windowStartAt(interval, weekStart, now)
}

// windowStartAt is WindowStart anchored to an explicit reference time so the
// date arithmetic is testable.
func windowStartAt(interval string, weekStart models.WeekStart, ref time.Time) *time.Time {
	switch interval {
	case IntervalYear:
		start := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location())
		return &start
	case IntervalMonth:
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		return &start
	case IntervalWeek:
		target := time.Monday
		if weekStart == models.WeekStartSunday {
			target = time.Sunday
		}
		today := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
		daysBack := (int(today.Weekday()) - int(target) + 7) % 7
		start := today.AddDate(0, 0, -daysBack)
		return &start
	default:
		return nil
	}
}
