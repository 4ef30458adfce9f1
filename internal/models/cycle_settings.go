package models

import "time"

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5

	MinCycleLength  = 21
	MaxCycleLength  = 45
	MinPeriodLength = 2
	MaxPeriodLength = 10
)

// CycleSettings is a single-row table holding the user's self-reported
// baseline. The engine never reads it; the calendar uses it to paint
// predicted period days and the API echoes it back to the profile form.
type CycleSettings struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	CycleLength  int       `gorm:"not null;default:28" json:"cycle_length"`
	PeriodLength int       `gorm:"not null;default:5" json:"period_length"`
	UpdatedAt    time.Time `json:"updated_at"`
}
