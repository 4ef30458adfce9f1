package services

import (
	"sort"
	"time"

	"github.com/terraincognita07/cyclesync/internal/models"
)

// fakeEntryStore is an in-memory EntryStore for service tests.
type fakeEntryStore struct {
	rows   map[string]models.DailyEntry
	nextID uint
}

func newFakeEntryStore() *fakeEntryStore {
	return &fakeEntryStore{rows: make(map[string]models.DailyEntry), nextID: 1}
}

func (store *fakeEntryStore) sorted() []models.DailyEntry {
	entries := make([]models.DailyEntry, 0, len(store.rows))
	for _, entry := range store.rows {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date.Before(entries[j].Date) })
	return entries
}

func (store *fakeEntryStore) ListAll() ([]models.DailyEntry, error) {
	return store.sorted(), nil
}

func (store *fakeEntryStore) ListRange(fromStart *time.Time, toEnd *time.Time) ([]models.DailyEntry, error) {
	entries := make([]models.DailyEntry, 0)
	for _, entry := range store.sorted() {
		if fromStart != nil && entry.Date.Before(*fromStart) {
			continue
		}
		if toEnd != nil && !entry.Date.Before(*toEnd) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (store *fakeEntryStore) FindByDayRange(dayStart time.Time, dayEnd time.Time) (models.DailyEntry, bool, error) {
	for _, entry := range store.rows {
		if !entry.Date.Before(dayStart) && entry.Date.Before(dayEnd) {
			return entry, true, nil
		}
	}
	return models.DailyEntry{}, false, nil
}

func (store *fakeEntryStore) Create(entry *models.DailyEntry) error {
	entry.ID = store.nextID
	store.nextID++
	store.rows[entry.Date.Format("2006-01-02")] = *entry
	return nil
}

func (store *fakeEntryStore) Save(entry *models.DailyEntry) error {
	store.rows[entry.Date.Format("2006-01-02")] = *entry
	return nil
}

func (store *fakeEntryStore) DeleteByDayRange(dayStart time.Time, dayEnd time.Time) error {
	for key, entry := range store.rows {
		if !entry.Date.Before(dayStart) && entry.Date.Before(dayEnd) {
			delete(store.rows, key)
		}
	}
	return nil
}

func mustParseDay(raw string) time.Time {
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		panic(err)
	}
	return parsed
}
