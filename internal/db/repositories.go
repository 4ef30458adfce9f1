package db

import "gorm.io/gorm"

type Repositories struct {
	DailyEntries  *DailyEntryRepository
	CycleSettings *CycleSettingsRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		DailyEntries:  NewDailyEntryRepository(database),
		CycleSettings: NewCycleSettingsRepository(database),
	}
}
