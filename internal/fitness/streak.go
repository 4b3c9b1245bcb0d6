package fitness

import "time"

// ActiveStreakCap bounds the dashboard streak walk-back.
const ActiveStreakCap = 30

// NextTriviaStreak returns the streak value after a correct answer at
// now, given the previous play time. Same calendar day leaves the
// streak unchanged, exactly one day later extends it, any larger gap
// (or a first-ever play) resets it to 1.
func NextTriviaStreak(lastPlayed *time.Time, now time.Time, current int) int {
	if lastPlayed == nil {
		return 1
	}
	switch DaysBetween(*lastPlayed, now) {
	case 0:
		if current == 0 {
			return 1
		}
		return current
	case 1:
		return current + 1
	default:
		return 1
	}
}

// ActiveStreak counts consecutive UTC calendar days, walking backward
// from today, on which at least one workout happened. The walk stops at
// the first gap and is capped at ActiveStreakCap days.
func ActiveStreak(workoutDates []time.Time, now time.Time) int {
	days := make(map[string]bool, len(workoutDates))
	for _, d := range workoutDates {
		days[DayKey(d)] = true
	}

	streak := 0
	check := DayStart(now)
	for i := 0; i < ActiveStreakCap; i++ {
		if !days[DayKey(check)] {
			break
		}
		streak++
		check = check.AddDate(0, 0, -1)
	}
	return streak
}
