package cycle

import "time"

const dayKeyFormat = "2006-01-02"

// DateOnly truncates a timestamp to midnight in its own location. All engine
// math runs on midnight-normalized dates so day deltas divide evenly.
func DateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, value.Location())
}

// DaysBetween returns the whole-day difference to - from.
func DaysBetween(from time.Time, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}

func betweenInclusive(day time.Time, start time.Time, end time.Time) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	day = DateOnly(day)
	return !day.Before(DateOnly(start)) && !day.After(DateOnly(end))
}

func dayKey(value time.Time) string {
	return DateOnly(value).Format(dayKeyFormat)
}
