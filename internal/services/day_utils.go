package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/cyclesync/internal/models"
)

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayRange returns the half-open [start, next-day-start) span used by the
// storage queries.
func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

func DayHasData(entry models.DailyEntry) bool {
	if entry.Flow != "" && entry.Flow != models.FlowNone {
		return true
	}
	if len(entry.Symptoms) > 0 {
		return true
	}
	if entry.Mood != "" && entry.Mood != models.MoodNeutral {
		return true
	}
	return strings.TrimSpace(entry.Notes) != ""
}
