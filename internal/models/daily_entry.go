package models

import "time"

const (
	FlowNone     = "none"
	FlowSpotting = "spotting"
	FlowLight    = "light"
	FlowMedium   = "medium"
	FlowHeavy    = "heavy"
)

const (
	MoodHappy   = "happy"
	MoodNeutral = "neutral"
	MoodSad     = "sad"
	MoodAngry   = "angry"
	MoodAnxious = "anxious"
)

// DailyEntry is one day's logged data. Date is unique; saving an entry for an
// existing date overwrites the whole record.
type DailyEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_entry_date" json:"date"`
	Flow      string    `gorm:"not null;default:none" json:"flow"`
	Mood      string    `gorm:"not null;default:neutral" json:"mood"`
	Symptoms  []string  `gorm:"serializer:json" json:"symptoms"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FlowLevels lists the flow vocabulary ordered by intensity.
func FlowLevels() []string {
	return []string{FlowNone, FlowSpotting, FlowLight, FlowMedium, FlowHeavy}
}

func Moods() []string {
	return []string{MoodHappy, MoodNeutral, MoodSad, MoodAngry, MoodAnxious}
}

// SymptomCatalog is the fixed symptom vocabulary shown by the tracker.
func SymptomCatalog() []string {
	return []string{
		"Cramps",
		"Headache",
		"Bloating",
		"Tender Breasts",
		"Acne",
		"Back Pain",
		"Fatigue",
		"Nausea",
		"Mood Swings",
		"Cravings",
	}
}

func IsValidFlow(value string) bool {
	for _, flow := range FlowLevels() {
		if flow == value {
			return true
		}
	}
	return false
}

func IsValidMood(value string) bool {
	for _, mood := range Moods() {
		if mood == value {
			return true
		}
	}
	return false
}

func IsCatalogSymptom(value string) bool {
	for _, symptom := range SymptomCatalog() {
		if symptom == value {
			return true
		}
	}
	return false
}
