package visits

import (
	"context"
	"testing"
	"time"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeTokenCounterRepository struct {
	counters map[string]int64
}

func newFakeTokenCounterRepository() *fakeTokenCounterRepository {
	return &fakeTokenCounterRepository{counters: make(map[string]int64)}
}

func (r *fakeTokenCounterRepository) Next(_ context.Context, locationID string, day time.Time) (int64, error) {
	key := locationID + "|" + day.Format(constvars.DateKeyFormat)
	r.counters[key]++
	return r.counters[key], nil
}

func TestTokenSequencerGenerate(t *testing.T) {
	ctx := context.Background()
	visitDate := time.Date(2026, time.February, 26, 9, 30, 0, 0, time.UTC)

	t.Run("Known Location", func(t *testing.T) {
		sequencer := NewTokenSequencer(newFakeTokenCounterRepository(), constvars.DefaultLocationCodes, zap.NewNop())

		token, err := sequencer.Generate(ctx, "dic-2", "DIC 2", "", visitDate)

		assert.NoError(t, err)
		assert.Equal(t, "DIC2-2602-0001", token, "token should use the mapped short code and ddmm date")
	})

	t.Run("Sequence Increments Per Location And Day", func(t *testing.T) {
		sequencer := NewTokenSequencer(newFakeTokenCounterRepository(), constvars.DefaultLocationCodes, zap.NewNop())

		for i := 1; i <= 6; i++ {
			_, err := sequencer.Generate(ctx, "dic-2", "DIC 2", "", visitDate)
			assert.NoError(t, err)
		}
		token, err := sequencer.Generate(ctx, "dic-2", "DIC 2", "", visitDate)

		assert.NoError(t, err)
		assert.Equal(t, "DIC2-2602-0007", token, "seventh token of the day should carry sequence 0007")
	})

	t.Run("Separate Locations Count Independently", func(t *testing.T) {
		sequencer := NewTokenSequencer(newFakeTokenCounterRepository(), constvars.DefaultLocationCodes, zap.NewNop())

		first, err := sequencer.Generate(ctx, "dic-2", "DIC 2", "", visitDate)
		assert.NoError(t, err)
		second, err := sequencer.Generate(ctx, "al-qouz", "AL QOUZ", "", visitDate)
		assert.NoError(t, err)

		assert.Equal(t, "DIC2-2602-0001", first)
		assert.Equal(t, "QOZ-2602-0001", second, "each location keeps its own daily counter")
	})

	t.Run("External Referral Suffix", func(t *testing.T) {
		sequencer := NewTokenSequencer(newFakeTokenCounterRepository(), constvars.DefaultLocationCodes, zap.NewNop())

		token, err := sequencer.Generate(ctx, "al-qouz", "AL QOUZ", "External Provider", visitDate)

		assert.NoError(t, err)
		assert.Equal(t, "QOZXT-2602-0001", token, "external referrals append XT to the location code")
	})

	t.Run("Unmapped Location Falls Back To First Four Runes", func(t *testing.T) {
		sequencer := NewTokenSequencer(newFakeTokenCounterRepository(), constvars.DefaultLocationCodes, zap.NewNop())

		token, err := sequencer.Generate(ctx, "warehouse-9", "Warehouse 9", "", visitDate)

		assert.NoError(t, err)
		assert.Equal(t, "WARE-2602-0001", token, "unmapped labels use their first four non-space characters")
	})

	t.Run("Empty Location Label", func(t *testing.T) {
		sequencer := NewTokenSequencer(newFakeTokenCounterRepository(), constvars.DefaultLocationCodes, zap.NewNop())

		token, err := sequencer.Generate(ctx, "", "", "", visitDate)

		assert.NoError(t, err)
		assert.Equal(t, "UNKN-2602-0001", token, "missing labels fall back to the UNKN code")
	})

	t.Run("Whitespace Normalization", func(t *testing.T) {
		sequencer := NewTokenSequencer(newFakeTokenCounterRepository(), constvars.DefaultLocationCodes, zap.NewNop())

		token, err := sequencer.Generate(ctx, "dic-2", "  dic   2  ", "", visitDate)

		assert.NoError(t, err)
		assert.Equal(t, "DIC2-2602-0001", token, "label lookup should survive casing and extra spaces")
	})
}

func TestFormatToken(t *testing.T) {
	when := time.Date(2026, time.February, 26, 0, 0, 0, 0, time.UTC)

	t.Run("Zero Padding", func(t *testing.T) {
		assert.Equal(t, "DIC2-2602-0007", FormatToken("DIC2", when, 7, zap.NewNop()))
		assert.Equal(t, "DIC2-2602-9999", FormatToken("DIC2", when, 9999, zap.NewNop()))
	})

	t.Run("Day Before Month", func(t *testing.T) {
		december := time.Date(2026, time.December, 5, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "QOZ-0512-0012", FormatToken("QOZ", december, 12, zap.NewNop()))
	})

	t.Run("Overflow Keeps Last Four Digits", func(t *testing.T) {
		assert.Equal(t, "DIC2-2602-0000", FormatToken("DIC2", when, 10000, zap.NewNop()))
		assert.Equal(t, "DIC2-2602-2345", FormatToken("DIC2", when, 12345, zap.NewNop()))
	})
}
