package cycle

import "time"

// Ovulation is assumed to fall a fixed 14 days after a period start,
// independent of the observed cycle length. The predictor uses the same
// offset so the two stay consistent.
const (
	ovulationOffsetDays    = 14
	fertileWindowLeadDays  = 5
	fertileWindowTrailDays = 1
)

type Classification struct {
	IsPeriodDay  bool `json:"is_period_day"`
	IsFertileDay bool `json:"is_fertile_day"`
}

// Classify reports whether a date is a period day or a fertile-window day for
// the given snapshot. Period days come from any derived cycle's inclusive
// range; the fertile window is anchored to the most recent cycle only.
func Classify(date time.Time, repo *Repository) Classification {
	cycles := repo.ListCycles()
	result := Classification{}

	for _, cycle := range cycles {
		if betweenInclusive(date, cycle.StartDate, cycle.EndDate) {
			result.IsPeriodDay = true
			break
		}
	}

	if len(cycles) > 0 {
		last := cycles[len(cycles)-1]
		ovulation := DateOnly(last.StartDate).AddDate(0, 0, ovulationOffsetDays)
		windowStart := ovulation.AddDate(0, 0, -fertileWindowLeadDays)
		windowEnd := ovulation.AddDate(0, 0, fertileWindowTrailDays)
		result.IsFertileDay = betweenInclusive(date, windowStart, windowEnd)
	}

	return result
}

// FertileWindow returns the current fertile window [start, end] anchored to
// the most recent cycle, or false when no cycles exist.
func FertileWindow(repo *Repository) (time.Time, time.Time, bool) {
	cycles := repo.ListCycles()
	if len(cycles) == 0 {
		return time.Time{}, time.Time{}, false
	}
	last := cycles[len(cycles)-1]
	ovulation := DateOnly(last.StartDate).AddDate(0, 0, ovulationOffsetDays)
	return ovulation.AddDate(0, 0, -fertileWindowLeadDays),
		ovulation.AddDate(0, 0, fertileWindowTrailDays),
		true
}
