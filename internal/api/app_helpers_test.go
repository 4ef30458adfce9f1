package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclesync/internal/db"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "cyclesync-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	RegisterRoutes(app, NewHandler(database, time.UTC))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, payload any, expectedStatus int) []byte {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("%s %s encode payload: %v", method, path, err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body: %v", method, path, err)
	}
	if response.StatusCode != expectedStatus {
		t.Fatalf("%s %s expected status %d, got %d: %s", method, path, expectedStatus, response.StatusCode, responseBody)
	}
	return responseBody
}

func decodeJSON(t *testing.T, raw []byte, target any) {
	t.Helper()
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response %s: %v", raw, err)
	}
}

// seedPeriodDays posts medium-flow entries for every day of [start, end].
func seedPeriodDays(t *testing.T, app *fiber.App, start string, end string) {
	t.Helper()

	first, err := time.ParseInLocation("2006-01-02", start, time.UTC)
	if err != nil {
		t.Fatalf("parse %s: %v", start, err)
	}
	last, err := time.ParseInLocation("2006-01-02", end, time.UTC)
	if err != nil {
		t.Fatalf("parse %s: %v", end, err)
	}
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		doJSON(t, app, http.MethodPost, "/api/entries/"+day.Format("2006-01-02"),
			map[string]any{"flow": "medium"}, http.StatusOK)
	}
}
