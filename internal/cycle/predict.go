package cycle

import "time"

// The source app never computed prediction confidence; it shipped these fixed
// figures. They are surfaced as-is until a real model replaces them.
const (
	periodConfidencePercent    = 92
	ovulationConfidencePercent = 88
)

type Prediction struct {
	NextPeriodStart     time.Time `json:"next_period_start"`
	OvulationDate       time.Time `json:"ovulation_date"`
	FertileWindowStart  time.Time `json:"fertile_window_start"`
	FertileWindowEnd    time.Time `json:"fertile_window_end"`
	DaysUntilNextPeriod int       `json:"days_until_next_period"`
	PeriodConfidence    int       `json:"period_confidence"`
	OvulationConfidence int       `json:"ovulation_confidence"`
}

// PredictNext projects the next period from the average start-to-start delta.
// It needs at least two cycles; with fewer it reports false rather than a
// fabricated date. The ovulation estimate counts 14 days back from the
// predicted start, not forward from the last actual one, and the days-until
// figure goes negative once the predicted date passes without a new cycle.
func PredictNext(repo *Repository, now time.Time) (Prediction, bool) {
	cycles := repo.ListCycles()
	lengths := cycleLengths(cycles)
	if len(lengths) == 0 {
		return Prediction{}, false
	}

	last := cycles[len(cycles)-1]
	nextStart := DateOnly(last.StartDate).AddDate(0, 0, roundToInt(averageInts(lengths)))
	ovulation := nextStart.AddDate(0, 0, -ovulationOffsetDays)

	return Prediction{
		NextPeriodStart:     nextStart,
		OvulationDate:       ovulation,
		FertileWindowStart:  ovulation.AddDate(0, 0, -fertileWindowLeadDays),
		FertileWindowEnd:    ovulation.AddDate(0, 0, fertileWindowTrailDays),
		DaysUntilNextPeriod: DaysBetween(now, nextStart),
		PeriodConfidence:    periodConfidencePercent,
		OvulationConfidence: ovulationConfidencePercent,
	}, true
}
