package service

import (
	"testing"
	"time"

	"fitness-community-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowStartYear(t *testing.T) {
	ref := time.Date(2024, time.August, 14, 15, 30, 0, 0, time.Local)
	start := windowStartAt(IntervalYear, models.WeekStartMonday, ref)
	require.NotNil(t, start)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local), *start)
}

func TestWindowStartMonth(t *testing.T) {
	ref := time.Date(2024, time.August, 14, 15, 30, 0, 0, time.Local)
	start := windowStartAt(IntervalMonth, models.WeekStartSunday, ref)
	require.NotNil(t, start)
	assert.Equal(t, time.Date(2024, time.August, 1, 0, 0, 0, 0, time.Local), *start)
}

func TestWindowStartWeek(t *testing.T) {
	// 2024-08-14 is a Wednesday.
	wednesday := time.Date(2024, time.August, 14, 9, 0, 0, 0, time.Local)

	t.Run("monday week start", func(t *testing.T) {
		start := windowStartAt(IntervalWeek, models.WeekStartMonday, wednesday)
		require.NotNil(t, start)
		assert.Equal(t, time.Date(2024, time.August, 12, 0, 0, 0, 0, time.Local), *start)
		assert.Equal(t, time.Monday, start.Weekday())
	})

	t.Run("sunday week start", func(t *testing.T) {
		start := windowStartAt(IntervalWeek, models.WeekStartSunday, wednesday)
		require.NotNil(t, start)
		assert.Equal(t, time.Date(2024, time.August, 11, 0, 0, 0, 0, time.Local), *start)
		assert.Equal(t, time.Sunday, start.Weekday())
	})

	t.Run("today counts as a match", func(t *testing.T) {
		monday := time.Date(2024, time.August, 12, 23, 59, 0, 0, time.Local)
		start := windowStartAt(IntervalWeek, models.WeekStartMonday, monday)
		require.NotNil(t, start)
		assert.Equal(t, time.Date(2024, time.August, 12, 0, 0, 0, 0, time.Local), *start)
	})
}

// The week window start is always the configured weekday, no more than six
// days before the reference date, regardless of the reference weekday.
func TestWindowStartWeekProperties(t *testing.T) {
	base := time.Date(2024, time.March, 3, 12, 0, 0, 0, time.Local)
	for day := 0; day < 14; day++ {
		ref := base.AddDate(0, 0, day)

		for _, weekStart := range []models.WeekStart{models.WeekStartMonday, models.WeekStartSunday} {
			start := windowStartAt(IntervalWeek, weekStart, ref)
			require.NotNil(t, start)

			expected := time.Monday
			if weekStart == models.WeekStartSunday {
				expected = time.Sunday
			}
			assert.Equal(t, expected, start.Weekday())
			assert.False(t, start.After(ref), "start must not be after the reference date")
			assert.True(t, start.After(ref.AddDate(0, 0, -7)), "start must be within the past seven days")
		}
	}
}

func TestWindowStartUnknownInterval(t *testing.T) {
	for _, interval := range []string{"", "decade", "all", "WEEK", "fortnight"} {
		assert.Nil(t, windowStartAt(interval, models.WeekStartMonday, time.Now()),
			"interval %q should resolve to no lower bound", interval)
	}
}
