package services

import (
	"time"

	"github.com/terraincognita07/cyclesync/internal/cycle"
	"github.com/terraincognita07/cyclesync/internal/models"
)

type CalendarDayState struct {
	Date        time.Time `json:"date"`
	DateString  string    `json:"date_string"`
	Day         int       `json:"day"`
	InMonth     bool      `json:"in_month"`
	IsToday     bool      `json:"is_today"`
	IsPeriod    bool      `json:"is_period"`
	IsFertile   bool      `json:"is_fertile"`
	IsPredicted bool      `json:"is_predicted"`
	IsOvulation bool      `json:"is_ovulation"`
	HasData     bool      `json:"has_data"`
}

// BuildCalendarDayStates produces the Sunday-aligned month grid (up to 42
// cells). Period and fertile flags come straight from the classifier;
// predicted period days are painted forward from the prediction using the
// configured period length, repeating every predicted cycle length so future
// months stay useful.
func BuildCalendarDayStates(monthStart time.Time, repo *cycle.Repository, settings models.CycleSettings, now time.Time, location *time.Location) []CalendarDayState {
	monthStart = DateAtLocation(monthStart, location)
	monthEnd := monthStart.AddDate(0, 1, -1)
	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDate(0, 0, 6-int(monthEnd.Weekday()))

	hasDataMap := make(map[string]bool)
	for _, entry := range repo.ListEntries() {
		key := DateAtLocation(entry.Date, location).Format("2006-01-02")
		hasDataMap[key] = hasDataMap[key] || DayHasData(entry)
	}

	predictedPeriodMap := make(map[string]bool)
	ovulationMap := make(map[string]bool)

	if prediction, ok := cycle.PredictNext(repo, now); ok {
		periodLength := settings.PeriodLength
		if periodLength <= 0 {
			periodLength = models.DefaultPeriodLength
		}
		cycleLength := settings.CycleLength
		if cycleLength <= 0 {
			cycleLength = models.DefaultCycleLength
		}

		cycleStart := DateAtLocation(prediction.NextPeriodStart, location)
		ovulation := DateAtLocation(prediction.OvulationDate, location)
		for !cycleStart.After(gridEnd) {
			for offset := 0; offset < periodLength; offset++ {
				predictedPeriodMap[cycleStart.AddDate(0, 0, offset).Format("2006-01-02")] = true
			}
			ovulationMap[ovulation.Format("2006-01-02")] = true

			cycleStart = cycleStart.AddDate(0, 0, cycleLength)
			ovulation = ovulation.AddDate(0, 0, cycleLength)
		}
	}

	todayKey := DateAtLocation(now, location).Format("2006-01-02")

	days := make([]CalendarDayState, 0, 42)
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		classification := cycle.Classify(day, repo)

		days = append(days, CalendarDayState{
			Date:        day,
			DateString:  key,
			Day:         day.Day(),
			InMonth:     day.Month() == monthStart.Month(),
			IsToday:     key == todayKey,
			IsPeriod:    classification.IsPeriodDay,
			IsFertile:   classification.IsFertileDay,
			IsPredicted: predictedPeriodMap[key],
			IsOvulation: ovulationMap[key],
			HasData:     hasDataMap[key],
		})
	}

	return days
}
