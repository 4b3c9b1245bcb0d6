// Package fitness contains the pure domain computations: date-range
// resolution, workout/nutrition aggregation, BMR/TDEE math, goal
// progress and streak transitions. Nothing in here touches the
// database or the network.
package fitness

import "time"

// Period is a symbolic reporting window resolved against "now".
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
	PeriodAll   Period = "all"
)

// ParsePeriod maps a raw query value to a Period, returning fallback
// for unknown or empty input. Listing endpoints historically default to
// "today" while analytics default to "week"; callers pass their own
// fallback so both behaviors stay explicit.
func ParsePeriod(raw string, fallback Period) Period {
	switch Period(raw) {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodYear, PeriodAll:
		return Period(raw)
	}
	return fallback
}

// Start resolves the inclusive lower bound of the period ending at now.
// The second return value is false for PeriodAll, meaning no date
// filter should be applied. Boundaries are computed on UTC days so a
// record never shifts buckets with the server's timezone.
func (p Period) Start(now time.Time) (time.Time, bool) {
	now = now.UTC()
	today := DayStart(now)

	switch p {
	case PeriodToday:
		return today, true
	case PeriodWeek:
		return today.AddDate(0, 0, -7), true
	case PeriodMonth:
		return today.AddDate(0, -1, 0), true
	case PeriodYear:
		return today.AddDate(-1, 0, 0), true
	case PeriodAll:
		return time.Time{}, false
	}
	// Unknown periods behave like week; ParsePeriod should prevent this.
	return today.AddDate(0, 0, -7), true
}

// DayStart truncates t to midnight of its UTC calendar day.
func DayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey returns the ISO date string identifying t's UTC calendar day.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DayLabel renders a short human-readable chart label ("Jan 2").
func DayLabel(t time.Time) string {
	return t.UTC().Format("Jan 2")
}

// DaysBetween returns the number of whole UTC calendar days from a to b.
// Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(DayStart(b).Sub(DayStart(a)) / (24 * time.Hour))
}
