package api

import (
	"net/http"
	"testing"
)

func TestEntryUpsertFetchDelete(t *testing.T) {
	app := newTestApp(t)

	body := doJSON(t, app, http.MethodPost, "/api/entries/2024-03-10", map[string]any{
		"flow":     "medium",
		"mood":     "sad",
		"symptoms": []string{"Cramps", "Fatigue"},
		"notes":    "rough day",
	}, http.StatusOK)

	var created struct {
		ID       uint     `json:"id"`
		Flow     string   `json:"flow"`
		Mood     string   `json:"mood"`
		Symptoms []string `json:"symptoms"`
	}
	decodeJSON(t, body, &created)
	if created.Flow != "medium" || created.Mood != "sad" {
		t.Fatalf("unexpected created entry: %+v", created)
	}
	if len(created.Symptoms) != 2 {
		t.Fatalf("expected 2 symptoms, got %v", created.Symptoms)
	}

	body = doJSON(t, app, http.MethodGet, "/api/entries/2024-03-10", nil, http.StatusOK)
	var fetched struct {
		ID   uint   `json:"id"`
		Flow string `json:"flow"`
	}
	decodeJSON(t, body, &fetched)
	if fetched.ID != created.ID {
		t.Fatalf("expected fetched id %d, got %d", created.ID, fetched.ID)
	}

	// Overwrite keeps identity and replaces the whole record.
	body = doJSON(t, app, http.MethodPost, "/api/entries/2024-03-10", map[string]any{"flow": "light"}, http.StatusOK)
	var overwritten struct {
		ID       uint     `json:"id"`
		Symptoms []string `json:"symptoms"`
	}
	decodeJSON(t, body, &overwritten)
	if overwritten.ID != created.ID {
		t.Fatalf("expected overwrite to keep id %d, got %d", created.ID, overwritten.ID)
	}
	if len(overwritten.Symptoms) != 0 {
		t.Fatalf("expected symptoms dropped on overwrite, got %v", overwritten.Symptoms)
	}

	doJSON(t, app, http.MethodDelete, "/api/entries/2024-03-10", nil, http.StatusNoContent)
	doJSON(t, app, http.MethodGet, "/api/entries/2024-03-10", nil, http.StatusNotFound)
}

func TestEntryValidation(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, http.MethodPost, "/api/entries/2024-03-10", map[string]any{"flow": "flood"}, http.StatusBadRequest)
	doJSON(t, app, http.MethodPost, "/api/entries/2024-03-10", map[string]any{"mood": "ecstatic"}, http.StatusBadRequest)
	doJSON(t, app, http.MethodPost, "/api/entries/2024-03-10", map[string]any{"symptoms": []string{"Levitation"}}, http.StatusBadRequest)
	doJSON(t, app, http.MethodPost, "/api/entries/not-a-date", map[string]any{"flow": "light"}, http.StatusBadRequest)
	doJSON(t, app, http.MethodGet, "/api/entries/not-a-date", nil, http.StatusBadRequest)
}

func TestEntriesRange(t *testing.T) {
	app := newTestApp(t)
	seedPeriodDays(t, app, "2024-03-10", "2024-03-12")

	body := doJSON(t, app, http.MethodGet, "/api/entries?from=2024-03-10&to=2024-03-11", nil, http.StatusOK)
	var entries []struct {
		Flow string `json:"flow"`
	}
	decodeJSON(t, body, &entries)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries in inclusive range, got %d", len(entries))
	}

	doJSON(t, app, http.MethodGet, "/api/entries?from=2024-03-12&to=2024-03-10", nil, http.StatusBadRequest)
	doJSON(t, app, http.MethodGet, "/api/entries?from=bad&to=2024-03-10", nil, http.StatusBadRequest)
}
