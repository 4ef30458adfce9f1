package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/terraincognita07/cyclesync/internal/models"
)

var (
	ErrInvalidDate    = errors.New("invalid date")
	ErrInvalidFlow    = errors.New("invalid flow level")
	ErrInvalidMood    = errors.New("invalid mood")
	ErrUnknownSymptom = errors.New("unknown symptom")
	ErrNotesTooLong   = errors.New("notes too long")
)

const maxNotesLength = 2000

// DayPayload is the raw entry form as it arrives from the client.
type DayPayload struct {
	Flow     string   `json:"flow"`
	Mood     string   `json:"mood"`
	Symptoms []string `json:"symptoms"`
	Notes    string   `json:"notes"`
}

func ParseDay(raw string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	parsed, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(raw), location)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return parsed, nil
}

// NormalizeDayPayload validates the payload against the fixed vocabularies
// and returns it with defaults applied and symptoms deduplicated and sorted.
func NormalizeDayPayload(payload DayPayload) (DayPayload, error) {
	payload.Flow = strings.TrimSpace(payload.Flow)
	payload.Mood = strings.TrimSpace(payload.Mood)
	payload.Notes = strings.TrimSpace(payload.Notes)

	if payload.Flow == "" {
		payload.Flow = models.FlowNone
	}
	if payload.Mood == "" {
		payload.Mood = models.MoodNeutral
	}
	if !models.IsValidFlow(payload.Flow) {
		return DayPayload{}, ErrInvalidFlow
	}
	if !models.IsValidMood(payload.Mood) {
		return DayPayload{}, ErrInvalidMood
	}
	if len(payload.Notes) > maxNotesLength {
		return DayPayload{}, ErrNotesTooLong
	}

	seen := make(map[string]struct{}, len(payload.Symptoms))
	symptoms := make([]string, 0, len(payload.Symptoms))
	for _, symptom := range payload.Symptoms {
		symptom = strings.TrimSpace(symptom)
		if symptom == "" {
			continue
		}
		if !models.IsCatalogSymptom(symptom) {
			return DayPayload{}, ErrUnknownSymptom
		}
		if _, duplicate := seen[symptom]; duplicate {
			continue
		}
		seen[symptom] = struct{}{}
		symptoms = append(symptoms, symptom)
	}
	sort.Strings(symptoms)
	payload.Symptoms = symptoms

	return payload, nil
}
