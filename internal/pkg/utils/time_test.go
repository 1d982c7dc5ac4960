package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("Valid Date", func(t *testing.T) {
		parsed, err := ParseDate("2026-02-26")

		assert.NoError(t, err)
		assert.Equal(t, 2026, parsed.Year())
		assert.Equal(t, time.February, parsed.Month())
		assert.Equal(t, 26, parsed.Day())
	})

	t.Run("Invalid Date", func(t *testing.T) {
		_, err := ParseDate("26/02/2026")

		assert.Error(t, err)
	})
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2026, time.February, 26, 14, 35, 12, 0, time.UTC)

	start, end := DayBounds(at)

	assert.Equal(t, time.Date(2026, time.February, 26, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.February, 27, 0, 0, 0, 0, time.UTC), end)
	assert.Equal(t, at.Location(), start.Location(), "bounds stay in the instant's location")
}

func TestGenerateExportFilename(t *testing.T) {
	now := time.Date(2026, time.February, 26, 14, 35, 12, 0, time.UTC)

	assert.Equal(t, "clinic_visits_20260226_143512.xlsx", GenerateExportFilename(now))
}
