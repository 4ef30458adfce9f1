package services

import (
	"time"

	"github.com/terraincognita07/cyclesync/internal/cycle"
)

// StatsOverview is the one-call payload behind the insights view: aggregate
// statistics, the derived cycle list, and the prediction when available.
type StatsOverview struct {
	Statistics cycle.Statistics  `json:"statistics"`
	Cycles     []cycle.Cycle     `json:"cycles"`
	EntryCount int               `json:"entry_count"`
	Prediction *cycle.Prediction `json:"prediction"`
}

type StatsService struct {
	days *DayService
}

func NewStatsService(days *DayService) *StatsService {
	return &StatsService{days: days}
}

func (service *StatsService) BuildOverview(now time.Time) (StatsOverview, error) {
	repo, err := service.days.LoadSnapshot()
	if err != nil {
		return StatsOverview{}, err
	}

	overview := StatsOverview{
		Statistics: cycle.ComputeStatistics(repo),
		Cycles:     repo.ListCycles(),
		EntryCount: repo.EntryCount(),
	}
	if prediction, ok := cycle.PredictNext(repo, now); ok {
		overview.Prediction = &prediction
	}
	return overview, nil
}

func (service *StatsService) BuildPrediction(now time.Time) (cycle.Prediction, bool, error) {
	repo, err := service.days.LoadSnapshot()
	if err != nil {
		return cycle.Prediction{}, false, err
	}
	prediction, ok := cycle.PredictNext(repo, now)
	return prediction, ok, nil
}
