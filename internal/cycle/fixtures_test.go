package cycle

import (
	"time"

	"github.com/terraincognita07/cyclesync/internal/models"
)

func mustParseDay(raw string) time.Time {
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		panic(err)
	}
	return parsed
}

func makeEntry(date string, flow string, symptoms ...string) models.DailyEntry {
	return models.DailyEntry{
		Date:     mustParseDay(date),
		Flow:     flow,
		Mood:     models.MoodNeutral,
		Symptoms: symptoms,
	}
}

// seedPeriod logs medium flow for every day of [start, end].
func seedPeriod(repo *Repository, start string, end string) {
	for day := mustParseDay(start); !day.After(mustParseDay(end)); day = day.AddDate(0, 0, 1) {
		repo.AddOrUpdateEntry(makeEntry(day.Format("2006-01-02"), models.FlowMedium))
	}
}

// threeCycleRepo reproduces the tracker's reference history: cycles starting
// 2024-01-15, 2024-02-12 and 2024-03-10, six period days each.
func threeCycleRepo() *Repository {
	repo := NewRepository()
	seedPeriod(repo, "2024-01-15", "2024-01-20")
	seedPeriod(repo, "2024-02-12", "2024-02-17")
	seedPeriod(repo, "2024-03-10", "2024-03-15")
	return repo
}
