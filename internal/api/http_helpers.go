package api

import (
	"strings"
	"time"

	"github.com/terraincognita07/cyclesync/internal/services"
)

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	return services.ParseDay(raw, location)
}

// parseMonthParam accepts YYYY-MM and returns the first day of that month.
func parseMonthParam(raw string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	return time.ParseInLocation("2006-01", strings.TrimSpace(raw), location)
}
