package utils

import (
	"time"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"
)

// ParseDate parses a yyyy-mm-dd value in the deployment's local calendar.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(constvars.DateFormat, value, time.Local)
}

// DayBounds returns [startOfDay, startOfNextDay) for the given instant.
func DayBounds(at time.Time) (time.Time, time.Time) {
	start := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
	return start, start.AddDate(0, 0, 1)
}
