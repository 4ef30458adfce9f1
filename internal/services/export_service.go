package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/cyclesync/internal/cycle"
	"github.com/terraincognita07/cyclesync/internal/models"
)

// ExportRow is one daily entry flattened for CSV/JSON export.
type ExportRow struct {
	Date     string   `json:"date"`
	IsPeriod bool     `json:"is_period"`
	Flow     string   `json:"flow"`
	Mood     string   `json:"mood"`
	Symptoms []string `json:"symptoms"`
	Notes    string   `json:"notes"`
}

type ExportSummary struct {
	GeneratedAt time.Time         `json:"generated_at"`
	FirstDate   string            `json:"first_date,omitempty"`
	LastDate    string            `json:"last_date,omitempty"`
	EntryCount  int               `json:"entry_count"`
	CycleCount  int               `json:"cycle_count"`
	Statistics  cycle.Statistics  `json:"statistics"`
	Prediction  *cycle.Prediction `json:"prediction"`
}

type ExportService struct {
	days     *DayService
	location *time.Location
}

func NewExportService(days *DayService, location *time.Location) *ExportService {
	if location == nil {
		location = time.UTC
	}
	return &ExportService{days: days, location: location}
}

func (service *ExportService) BuildRows() ([]ExportRow, error) {
	repo, err := service.days.LoadSnapshot()
	if err != nil {
		return nil, err
	}

	entries := repo.ListEntries()
	rows := make([]ExportRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, ExportRow{
			Date:     DateAtLocation(entry.Date, service.location).Format("2006-01-02"),
			IsPeriod: entry.Flow != "" && entry.Flow != models.FlowNone,
			Flow:     entry.Flow,
			Mood:     entry.Mood,
			Symptoms: entry.Symptoms,
			Notes:    entry.Notes,
		})
	}
	return rows, nil
}

func (service *ExportService) BuildSummary(now time.Time) (ExportSummary, error) {
	repo, err := service.days.LoadSnapshot()
	if err != nil {
		return ExportSummary{}, err
	}

	summary := ExportSummary{
		GeneratedAt: now,
		EntryCount:  repo.EntryCount(),
		CycleCount:  len(repo.ListCycles()),
		Statistics:  cycle.ComputeStatistics(repo),
	}
	if entries := repo.ListEntries(); len(entries) > 0 {
		summary.FirstDate = entries[0].Date.Format("2006-01-02")
		summary.LastDate = entries[len(entries)-1].Date.Format("2006-01-02")
	}
	if prediction, ok := cycle.PredictNext(repo, now); ok {
		summary.Prediction = &prediction
	}
	return summary, nil
}

// CSVHeaders is the column order of the CSV export.
func CSVHeaders() []string {
	return []string{"date", "is_period", "flow", "mood", "symptoms", "notes"}
}

func (row ExportRow) CSVRecord() []string {
	isPeriod := "no"
	if row.IsPeriod {
		isPeriod = "yes"
	}
	return []string{
		row.Date,
		isPeriod,
		row.Flow,
		row.Mood,
		strings.Join(row.Symptoms, "; "),
		row.Notes,
	}
}
