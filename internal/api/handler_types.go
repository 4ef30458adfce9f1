package api

import (
	"time"

	"github.com/terraincognita07/cyclesync/internal/db"
	"github.com/terraincognita07/cyclesync/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	location *time.Location
	days     *services.DayService
	stats    *services.StatsService
	export   *services.ExportService
	settings *db.CycleSettingsRepository
}

func NewHandler(database *gorm.DB, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}

	repos := db.NewRepositories(database)
	days := services.NewDayService(repos.DailyEntries, location)

	return &Handler{
		location: location,
		days:     days,
		stats:    services.NewStatsService(days),
		export:   services.NewExportService(days, location),
		settings: repos.CycleSettings,
	}
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}
