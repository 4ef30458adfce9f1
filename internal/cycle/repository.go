package cycle

import (
	"sort"
	"time"

	"github.com/terraincognita07/cyclesync/internal/models"
)

// Cycle is one period occurrence, start to end inclusive.
type Cycle struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// Repository is an immutable-per-call snapshot of the logged history. The
// classifier, statistics engine and predictor only read from it; writes go
// through AddOrUpdateEntry, a whole-record upsert keyed by date.
type Repository struct {
	entries map[string]models.DailyEntry
}

func NewRepository() *Repository {
	return &Repository{entries: make(map[string]models.DailyEntry)}
}

// NewRepositoryFromEntries builds a snapshot from stored rows. Later rows win
// on duplicate dates, matching the upsert semantics.
func NewRepositoryFromEntries(entries []models.DailyEntry) *Repository {
	repo := NewRepository()
	for _, entry := range entries {
		repo.AddOrUpdateEntry(entry)
	}
	return repo
}

func (repo *Repository) AddOrUpdateEntry(entry models.DailyEntry) {
	entry.Date = DateOnly(entry.Date)
	repo.entries[dayKey(entry.Date)] = entry
}

func (repo *Repository) GetEntry(date time.Time) (models.DailyEntry, bool) {
	entry, found := repo.entries[dayKey(date)]
	return entry, found
}

// ListEntries returns all entries ascending by date.
func (repo *Repository) ListEntries() []models.DailyEntry {
	entries := make([]models.DailyEntry, 0, len(repo.entries))
	for _, entry := range repo.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries
}

// ListCycles derives cycles from the logged entries, ascending by start date.
// A run of consecutive dates with non-none flow forms one cycle; a calendar
// gap or a day logged back to none closes it. Derived cycles cannot overlap.
func (repo *Repository) ListCycles() []Cycle {
	cycles := make([]Cycle, 0)
	var current *Cycle

	for _, entry := range repo.ListEntries() {
		bleeding := entry.Flow != "" && entry.Flow != models.FlowNone
		if !bleeding {
			if current != nil {
				cycles = append(cycles, *current)
				current = nil
			}
			continue
		}

		day := DateOnly(entry.Date)
		if current != nil && DaysBetween(current.EndDate, day) == 1 {
			current.EndDate = day
			continue
		}
		if current != nil {
			cycles = append(cycles, *current)
		}
		current = &Cycle{StartDate: day, EndDate: day}
	}
	if current != nil {
		cycles = append(cycles, *current)
	}

	return cycles
}

// EntryCount reports how many days have a logged entry.
func (repo *Repository) EntryCount() int {
	return len(repo.entries)
}
