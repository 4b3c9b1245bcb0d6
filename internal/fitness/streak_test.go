package fitness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextTriviaStreak(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	threeDaysAgo := now.AddDate(0, 0, -3)
	earlierToday := now.Add(-6 * time.Hour)

	tests := []struct {
		name       string
		lastPlayed *time.Time
		current    int
		expected   int
	}{
		{"First Ever Play", nil, 0, 1},
		{"Consecutive Day", &yesterday, 4, 5},
		{"Same Day Unchanged", &earlierToday, 4, 4},
		{"Gap Resets", &threeDaysAgo, 9, 1},
		{"Same Day But Zero Streak", &earlierToday, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextTriviaStreak(tt.lastPlayed, now, tt.current))
		})
	}
}

func TestNextTriviaStreakAcrossMidnight(t *testing.T) {
	t.Parallel()
	// 23:30 yesterday to 00:30 today is only an hour apart but crosses
	// the calendar-day boundary, so it counts as a consecutive day.
	lastPlayed := time.Date(2024, 3, 14, 23, 30, 0, 0, time.UTC)
	now := time.Date(2024, 3, 15, 0, 30, 0, 0, time.UTC)
	assert.Equal(t, 3, NextTriviaStreak(&lastPlayed, now, 2))
}

func TestActiveStreak(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }

	t.Run("Consecutive Days", func(t *testing.T) {
		dates := []time.Time{day(0), day(-1), day(-2)}
		assert.Equal(t, 3, ActiveStreak(dates, now))
	})

	t.Run("Stops At First Gap", func(t *testing.T) {
		dates := []time.Time{day(0), day(-1), day(-3), day(-4)}
		assert.Equal(t, 2, ActiveStreak(dates, now))
	})

	t.Run("No Workout Today", func(t *testing.T) {
		dates := []time.Time{day(-1), day(-2)}
		assert.Zero(t, ActiveStreak(dates, now))
	})

	t.Run("Capped At Thirty Days", func(t *testing.T) {
		var dates []time.Time
		for i := 0; i < 60; i++ {
			dates = append(dates, day(-i))
		}
		assert.Equal(t, ActiveStreakCap, ActiveStreak(dates, now))
	})

	t.Run("Multiple Workouts Same Day Count Once", func(t *testing.T) {
		dates := []time.Time{day(0), day(0).Add(2 * time.Hour), day(-1)}
		assert.Equal(t, 2, ActiveStreak(dates, now))
	})
}
