package services

import (
	"fmt"
	"time"

	"github.com/terraincognita07/cyclesync/internal/cycle"
	"github.com/terraincognita07/cyclesync/internal/models"
)

type EntryStore interface {
	ListAll() ([]models.DailyEntry, error)
	ListRange(fromStart *time.Time, toEnd *time.Time) ([]models.DailyEntry, error)
	FindByDayRange(dayStart time.Time, dayEnd time.Time) (models.DailyEntry, bool, error)
	Create(entry *models.DailyEntry) error
	Save(entry *models.DailyEntry) error
	DeleteByDayRange(dayStart time.Time, dayEnd time.Time) error
}

// DayService owns the daily-entry workflow: validated whole-record upserts
// keyed by date, reads, and snapshot loading for the analytics engine.
type DayService struct {
	entries  EntryStore
	location *time.Location
}

func NewDayService(entries EntryStore, location *time.Location) *DayService {
	if location == nil {
		location = time.UTC
	}
	return &DayService{entries: entries, location: location}
}

// UpsertDay overwrites the entry for the given day with the payload.
// Overwrite is always permitted; an existing row keeps its identity.
func (service *DayService) UpsertDay(day time.Time, payload DayPayload) (models.DailyEntry, error) {
	normalized, err := NormalizeDayPayload(payload)
	if err != nil {
		return models.DailyEntry{}, err
	}

	dayStart, dayEnd := DayRange(day, service.location)
	existing, found, err := service.entries.FindByDayRange(dayStart, dayEnd)
	if err != nil {
		return models.DailyEntry{}, fmt.Errorf("fetch day: %w", err)
	}

	entry := models.DailyEntry{
		Date:     dayStart,
		Flow:     normalized.Flow,
		Mood:     normalized.Mood,
		Symptoms: normalized.Symptoms,
		Notes:    normalized.Notes,
	}
	if found {
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
		if err := service.entries.Save(&entry); err != nil {
			return models.DailyEntry{}, fmt.Errorf("update day: %w", err)
		}
		return entry, nil
	}

	if err := service.entries.Create(&entry); err != nil {
		return models.DailyEntry{}, fmt.Errorf("create day: %w", err)
	}
	return entry, nil
}

func (service *DayService) FetchDay(day time.Time) (models.DailyEntry, bool, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	return service.entries.FindByDayRange(dayStart, dayEnd)
}

func (service *DayService) FetchRange(from time.Time, to time.Time) ([]models.DailyEntry, error) {
	fromStart := DateAtLocation(from, service.location)
	toEnd := DateAtLocation(to, service.location).AddDate(0, 0, 1)
	return service.entries.ListRange(&fromStart, &toEnd)
}

func (service *DayService) DeleteDay(day time.Time) error {
	dayStart, dayEnd := DayRange(day, service.location)
	return service.entries.DeleteByDayRange(dayStart, dayEnd)
}

// LoadSnapshot reads the whole log into an in-memory repository for the pure
// calculations. Cycles are always derived from the rows, never stored.
func (service *DayService) LoadSnapshot() (*cycle.Repository, error) {
	rows, err := service.entries.ListAll()
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}
	return cycle.NewRepositoryFromEntries(rows), nil
}
