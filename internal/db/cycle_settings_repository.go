package db

import (
	"github.com/terraincognita07/cyclesync/internal/models"
	"gorm.io/gorm"
)

type CycleSettingsRepository struct {
	database *gorm.DB
}

func NewCycleSettingsRepository(database *gorm.DB) *CycleSettingsRepository {
	return &CycleSettingsRepository{database: database}
}

// Get returns the stored settings row, or the defaults when none was saved.
func (repo *CycleSettingsRepository) Get() (models.CycleSettings, error) {
	settings := models.CycleSettings{}
	result := repo.database.Order("id ASC").Limit(1).Find(&settings)
	if result.Error != nil {
		return models.CycleSettings{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CycleSettings{
			CycleLength:  models.DefaultCycleLength,
			PeriodLength: models.DefaultPeriodLength,
		}, nil
	}
	return settings, nil
}

func (repo *CycleSettingsRepository) Save(settings *models.CycleSettings) error {
	existing := models.CycleSettings{}
	result := repo.database.Order("id ASC").Limit(1).Find(&existing)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		settings.ID = existing.ID
	}
	return repo.database.Save(settings).Error
}
